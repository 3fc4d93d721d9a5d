package planner_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	appplanner "github.com/muhammadheryan/echobody/application/planner"
	"github.com/muhammadheryan/echobody/constant"
	planmocks "github.com/muhammadheryan/echobody/mocks/repository/plan"
	rabbitmocks "github.com/muhammadheryan/echobody/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/echobody/model"
	"github.com/muhammadheryan/echobody/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/echobody/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

func record(id string, kind constant.PlanKind, minute int) model.PlanRecord {
	return model.PlanRecord{
		ID:         id,
		UserID:     "u1",
		AIResponse: "{}",
		Timestamp:  base.Add(time.Duration(minute) * time.Minute),
		Kind:       kind,
	}
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	require.Error(t, err)
	var customErr cerr.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constant.ErrorTypeCode[code], customErr.ErrorCode())
}

func TestPlannerApp_StorePlan(t *testing.T) {
	type fields struct {
		mealRepo    *planmocks.PlanRepository
		workoutRepo *planmocks.PlanRepository
		publisher   *rabbitmocks.PlanPublisher
	}
	type args struct {
		kind constant.PlanKind
		req  *model.StorePlanRequest
	}
	stored := record("r1", constant.PlanKindMeal, 0)

	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.PlanRecord
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: string aiResponse stored unquoted and announced",
			args: args{kind: constant.PlanKindMeal, req: &model.StorePlanRequest{UserID: "u1", AIResponse: json.RawMessage(`"{}"`)}},
			mockCall: func(f fields) {
				f.mealRepo.
					On("Create", mock.Anything, &model.PlanRecord{UserID: "u1", AIResponse: "{}"}).
					Return(&stored, nil).
					Once()
				f.publisher.
					On("PublishPlanStored", rabbitmq.PlanStoredMessage{
						RecordID: "r1", UserID: "u1", Kind: "meal", Timestamp: stored.Timestamp,
					}).
					Return(nil).
					Once()
			},
			want: &stored,
		},
		{
			name: "success: publish failure does not fail the request",
			args: args{kind: constant.PlanKindWorkout, req: &model.StorePlanRequest{UserID: "u1", AIResponse: json.RawMessage(`{"Day 1":{}}`)}},
			mockCall: func(f fields) {
				f.workoutRepo.
					On("Create", mock.Anything, &model.PlanRecord{UserID: "u1", AIResponse: `{"Day 1":{}}`}).
					Return(&stored, nil).
					Once()
				f.publisher.On("PublishPlanStored", mock.Anything).Return(errors.New("channel closed")).Once()
			},
			want: &stored,
		},
		{
			name:     "error: missing userId",
			args:     args{kind: constant.PlanKindMeal, req: &model.StorePlanRequest{AIResponse: json.RawMessage(`"x"`)}},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: missing aiResponse",
			args:     args{kind: constant.PlanKindMeal, req: &model.StorePlanRequest{UserID: "u1"}},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: false aiResponse",
			args:     args{kind: constant.PlanKindMeal, req: &model.StorePlanRequest{UserID: "u1", AIResponse: json.RawMessage(`false`)}},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: zero aiResponse",
			args:     args{kind: constant.PlanKindWorkout, req: &model.StorePlanRequest{UserID: "u1", AIResponse: json.RawMessage(`0`)}},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: store rejects id",
			args: args{kind: constant.PlanKindMeal, req: &model.StorePlanRequest{UserID: "bad", AIResponse: json.RawMessage(`"x"`)}},
			mockCall: func(f fields) {
				f.mealRepo.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrInvalidID).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: store failure",
			args: args{kind: constant.PlanKindMeal, req: &model.StorePlanRequest{UserID: "u1", AIResponse: json.RawMessage(`"x"`)}},
			mockCall: func(f fields) {
				f.mealRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				mealRepo:    planmocks.NewPlanRepository(t),
				workoutRepo: planmocks.NewPlanRepository(t),
				publisher:   rabbitmocks.NewPlanPublisher(t),
			}
			tt.mockCall(f)

			app := appplanner.NewPlannerApp(f.mealRepo, f.workoutRepo, f.publisher)
			got, err := app.StorePlan(context.Background(), tt.args.kind, tt.args.req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlannerApp_StorePlanWithoutPublisher(t *testing.T) {
	mealRepo := planmocks.NewPlanRepository(t)
	stored := record("r1", constant.PlanKindMeal, 0)
	mealRepo.On("Create", mock.Anything, mock.Anything).Return(&stored, nil).Once()

	app := appplanner.NewPlannerApp(mealRepo, planmocks.NewPlanRepository(t), nil)
	got, err := app.StorePlan(context.Background(), constant.PlanKindMeal, &model.StorePlanRequest{
		UserID: "u1", AIResponse: json.RawMessage(`"x"`),
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
}

func TestPlannerApp_ListPlans(t *testing.T) {
	type fields struct {
		mealRepo    *planmocks.PlanRepository
		workoutRepo *planmocks.PlanRepository
	}
	type args struct {
		kind  constant.PlanKind
		count int
	}
	meals := []model.PlanRecord{
		record("m1", constant.PlanKindMeal, 1),
		record("m2", constant.PlanKindMeal, 4),
		record("m3", constant.PlanKindMeal, 6),
	}
	workouts := []model.PlanRecord{
		record("w1", constant.PlanKindWorkout, 0),
		record("w2", constant.PlanKindWorkout, 5),
		record("w3", constant.PlanKindWorkout, 7),
	}

	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantType string
		wantIDs  []string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "all merges kinds before the limit",
			args: args{kind: constant.PlanKindAll, count: 2},
			mockCall: func(f fields) {
				f.mealRepo.On("ListByUser", mock.Anything, "u1", 2).Return(meals[:2], nil).Once()
				f.workoutRepo.On("ListByUser", mock.Anything, "u1", 2).Return(workouts[:2], nil).Once()
			},
			wantType: "All Planner",
			wantIDs:  []string{"w1", "m1"},
		},
		{
			name: "all returns everything under the limit in time order",
			args: args{kind: constant.PlanKindAll, count: 10},
			mockCall: func(f fields) {
				f.mealRepo.On("ListByUser", mock.Anything, "u1", 10).Return(meals, nil).Once()
				f.workoutRepo.On("ListByUser", mock.Anything, "u1", 10).Return(workouts, nil).Once()
			},
			wantType: "All Planner",
			wantIDs:  []string{"w1", "m1", "m2", "w2", "m3", "w3"},
		},
		{
			name: "huge count is passed to the stores as a limit",
			args: args{kind: constant.PlanKindAll, count: 1 << 33},
			mockCall: func(f fields) {
				f.mealRepo.On("ListByUser", mock.Anything, "u1", 1<<33).Return(meals[:1], nil).Once()
				f.workoutRepo.On("ListByUser", mock.Anything, "u1", 1<<33).Return(workouts[:1], nil).Once()
			},
			wantType: "All Planner",
			wantIDs:  []string{"w1", "m1"},
		},
		{
			name: "meal only",
			args: args{kind: constant.PlanKindMeal, count: 3},
			mockCall: func(f fields) {
				f.mealRepo.On("ListByUser", mock.Anything, "u1", 3).Return(meals, nil).Once()
			},
			wantType: "Meal Planner",
			wantIDs:  []string{"m1", "m2", "m3"},
		},
		{
			name: "workout only",
			args: args{kind: constant.PlanKindWorkout, count: 1},
			mockCall: func(f fields) {
				f.workoutRepo.On("ListByUser", mock.Anything, "u1", 1).Return(workouts[:1], nil).Once()
			},
			wantType: "Workout Planner",
			wantIDs:  []string{"w1"},
		},
		{
			name: "error: nothing stored",
			args: args{kind: constant.PlanKindAll, count: 3},
			mockCall: func(f fields) {
				f.mealRepo.On("ListByUser", mock.Anything, "u1", 3).Return([]model.PlanRecord{}, nil).Once()
				f.workoutRepo.On("ListByUser", mock.Anything, "u1", 3).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPlannerNotFound,
		},
		{
			name: "error: store failure",
			args: args{kind: constant.PlanKindMeal, count: 3},
			mockCall: func(f fields) {
				f.mealRepo.On("ListByUser", mock.Anything, "u1", 3).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:     "error: non positive count",
			args:     args{kind: constant.PlanKindAll, count: 0},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: unknown type",
			args:     args{kind: constant.PlanKind("snack"), count: 2},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				mealRepo:    planmocks.NewPlanRepository(t),
				workoutRepo: planmocks.NewPlanRepository(t),
			}
			tt.mockCall(f)

			app := appplanner.NewPlannerApp(f.mealRepo, f.workoutRepo, nil)
			got, err := app.ListPlans(context.Background(), "u1", tt.args.kind, tt.args.count)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)

			ids := make([]string, 0, len(got.Planners))
			for _, p := range got.Planners {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
