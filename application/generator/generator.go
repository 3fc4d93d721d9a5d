package generator

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"strings"
	"time"

	"github.com/muhammadheryan/echobody/cmd/config"
	"github.com/muhammadheryan/echobody/constant"
	"github.com/muhammadheryan/echobody/model"
	"github.com/muhammadheryan/echobody/prompt"
	"github.com/muhammadheryan/echobody/thirdparty/openai"
	appcontext "github.com/muhammadheryan/echobody/utils/context"
	"github.com/muhammadheryan/echobody/utils/errors"
	"github.com/muhammadheryan/echobody/utils/logger"
	"github.com/muhammadheryan/echobody/utils/metrics"
	validatorx "github.com/muhammadheryan/echobody/utils/validator"
	"go.uber.org/zap"
)

type GeneratorApp interface {
	Generate(ctx context.Context, endpoint constant.Endpoint, fields map[string]any) (*model.GeneratePlanResponse, error)
}

type GeneratorAppImpl struct {
	config     *config.Config
	completion openai.CompletionClient
}

func NewGeneratorApp(config *config.Config, completion openai.CompletionClient) GeneratorApp {
	return &GeneratorAppImpl{
		config:     config,
		completion: completion,
	}
}

// Generate validates fields against the endpoint schema, renders its prompt,
// makes one completion call and parses the reply.
func (s *GeneratorAppImpl) Generate(ctx context.Context, endpoint constant.Endpoint, fields map[string]any) (*model.GeneratePlanResponse, error) {
	path := appcontext.GetEndpoint(ctx)

	def, ok := endpoints[endpoint]
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if violation := validatorx.ValidateFields(def.schema, fields); violation != nil {
		logger.Error("[Generate] invalid request",
			zap.String("endpoint", path),
			zap.String("error", violation.Message()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, violation.Message())
	}

	text, err := prompt.Build(def.template, fields)
	if err != nil {
		logger.Error("[Generate] err prompt.Build", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	start := time.Now()
	reply, err := s.completion.Complete(ctx, s.config.OpenAI.Model, text)
	metrics.CompletionLatency.
		WithLabelValues(string(def.template), completionOutcome(err)).
		Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error("[Generate] err completion.Complete", zap.String("endpoint", path), zap.String("error", err.Error()))
		if goerrors.Is(err, openai.ErrNoCompletion) {
			return nil, errors.SetCustomError(constant.ErrUpstream)
		}
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	routine, err := parseRoutine(reply, def.mode)
	if err != nil {
		logger.Error("[Generate] err parseRoutine", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[Generate] completion processed", zap.String("endpoint", path))

	resp := &model.GeneratePlanResponse{
		Status:  true,
		Message: def.message,
		Routine: routine,
	}
	if def.echo {
		resp.RequestData = fields
	}
	return resp, nil
}

var errUnparseable = goerrors.New("completion reply is not valid JSON")

// parseRoutine keeps a JSON reply verbatim so key order survives. Lenient mode
// falls back to the raw text.
func parseRoutine(reply string, mode constant.ParseMode) (any, error) {
	trimmed := strings.TrimSpace(reply)
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}
	if mode == constant.ParseLenient {
		return reply, nil
	}
	return nil, errUnparseable
}

func completionOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case goerrors.Is(err, openai.ErrNoCompletion):
		return "empty"
	default:
		return "error"
	}
}
