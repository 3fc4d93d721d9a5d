package planner

import (
	"context"
	goerrors "errors"
	"sort"

	"github.com/muhammadheryan/echobody/constant"
	"github.com/muhammadheryan/echobody/model"
	planrepo "github.com/muhammadheryan/echobody/repository/plan"
	"github.com/muhammadheryan/echobody/thirdparty/rabbitmq"
	appcontext "github.com/muhammadheryan/echobody/utils/context"
	"github.com/muhammadheryan/echobody/utils/errors"
	"github.com/muhammadheryan/echobody/utils/logger"
	"github.com/muhammadheryan/echobody/utils/metrics"
	"go.uber.org/zap"
)

type PlannerApp interface {
	StorePlan(ctx context.Context, kind constant.PlanKind, req *model.StorePlanRequest) (*model.PlanRecord, error)
	ListPlans(ctx context.Context, userID string, kind constant.PlanKind, count int) (*model.PlannerListResponse, error)
}

type PlannerAppImpl struct {
	repos     map[constant.PlanKind]planrepo.PlanRepository
	publisher rabbitmq.PlanPublisher
}

// NewPlannerApp wires one repository per kind. publisher may be nil.
func NewPlannerApp(mealRepo, workoutRepo planrepo.PlanRepository, publisher rabbitmq.PlanPublisher) PlannerApp {
	return &PlannerAppImpl{
		repos: map[constant.PlanKind]planrepo.PlanRepository{
			constant.PlanKindMeal:    mealRepo,
			constant.PlanKindWorkout: workoutRepo,
		},
		publisher: publisher,
	}
}

func (s *PlannerAppImpl) StorePlan(ctx context.Context, kind constant.PlanKind, req *model.StorePlanRequest) (*model.PlanRecord, error) {
	path := appcontext.GetEndpoint(ctx)

	repo, ok := s.repos[kind]
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	content := req.Content()
	if req.UserID == "" || content == "" {
		logger.Error("[StorePlan] missing userId or aiResponse", zap.String("endpoint", path))
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "UserId and aiResponse are required")
	}

	record, err := repo.Create(ctx, &model.PlanRecord{UserID: req.UserID, AIResponse: content})
	if err != nil {
		logger.Error("[StorePlan] err repo.Create", zap.String("endpoint", path), zap.String("error", err.Error()))
		if goerrors.Is(err, model.ErrInvalidID) {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid parameter: userId")
		}
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	metrics.PlansStored.WithLabelValues(string(kind)).Inc()

	if s.publisher != nil {
		err = s.publisher.PublishPlanStored(rabbitmq.PlanStoredMessage{
			RecordID:  record.ID,
			UserID:    record.UserID,
			Kind:      string(kind),
			Timestamp: record.Timestamp,
		})
		if err != nil {
			logger.Warn("[StorePlan] err publisher.PublishPlanStored", zap.String("endpoint", path), zap.String("error", err.Error()))
		}
	}

	return record, nil
}

// ListPlans returns up to count records in ascending timestamp order. For
// PlanKindAll both kinds are merged before the limit is applied.
func (s *PlannerAppImpl) ListPlans(ctx context.Context, userID string, kind constant.PlanKind, count int) (*model.PlannerListResponse, error) {
	path := appcontext.GetEndpoint(ctx)

	if count <= 0 {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid parameter: count must be a positive integer")
	}

	var kinds []constant.PlanKind
	switch kind {
	case constant.PlanKindMeal, constant.PlanKindWorkout:
		kinds = []constant.PlanKind{kind}
	case constant.PlanKindAll:
		kinds = []constant.PlanKind{constant.PlanKindMeal, constant.PlanKindWorkout}
	default:
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid parameter: type must be one of meal, workout")
	}

	var planners []model.PlanRecord
	for _, k := range kinds {
		records, err := s.repos[k].ListByUser(ctx, userID, count)
		if err != nil {
			logger.Error("[ListPlans] err repo.ListByUser",
				zap.String("endpoint", path),
				zap.String("kind", string(k)),
				zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		planners = append(planners, records...)
	}

	if len(kinds) > 1 {
		sort.SliceStable(planners, func(i, j int) bool {
			return planners[i].Timestamp.Before(planners[j].Timestamp)
		})
		if len(planners) > count {
			planners = planners[:count]
		}
	}

	if len(planners) == 0 {
		return nil, errors.SetCustomError(constant.ErrPlannerNotFound)
	}

	return &model.PlannerListResponse{
		Type:     constant.PlanKindLabel[kind],
		Planners: planners,
	}, nil
}
