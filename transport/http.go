package transport

import (
	"encoding/json"
	goerrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	generatorapp "github.com/muhammadheryan/echobody/application/generator"
	plannerapp "github.com/muhammadheryan/echobody/application/planner"
	userapp "github.com/muhammadheryan/echobody/application/user"
	"github.com/muhammadheryan/echobody/constant"
	"github.com/muhammadheryan/echobody/model"
	"github.com/muhammadheryan/echobody/utils/errors"
	"github.com/muhammadheryan/echobody/utils/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	GeneratorApp generatorapp.GeneratorApp
	PlannerApp   plannerapp.PlannerApp
	UserApp      userapp.UserApp
}

func NewTransport(GeneratorApp generatorapp.GeneratorApp, PlannerApp plannerapp.PlannerApp, UserApp userapp.UserApp, metricsAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		GeneratorApp: GeneratorApp,
		PlannerApp:   PlannerApp,
		UserApp:      UserApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", InternalMiddleware(metricsAPIKey)(metrics.Handler())).Methods(http.MethodGet)

	mux.HandleFunc("/", rh.Ping).Methods(http.MethodGet)

	// plan generation
	mux.HandleFunc("/generate-plan", rh.GeneratePlan).Methods(http.MethodPost)
	mux.HandleFunc("/generate-workout-plan", rh.GenerateWorkoutPlan).Methods(http.MethodGet)
	mux.HandleFunc("/generate-meal-plan-v2", rh.GenerateMealPlanV2).Methods(http.MethodPost)
	mux.HandleFunc("/generate-workout-plan-v2", rh.GenerateWorkoutPlanV2).Methods(http.MethodPost)

	// users
	mux.HandleFunc("/user", rh.CreateUser).Methods(http.MethodPost)
	mux.HandleFunc("/users/{userId}", rh.UpdateUser).Methods(http.MethodPatch)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// planners
	mux.HandleFunc("/store-meal-planner", rh.StoreMealPlanner).Methods(http.MethodPost)
	mux.HandleFunc("/store-workout-planner", rh.StoreWorkoutPlanner).Methods(http.MethodPost)
	mux.HandleFunc("/planners/{userId}/{count}", rh.ListPlanners).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())

	return CORSMiddleware(mux)
}

// Ping handler
// @Summary Health probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (s *RestHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"ping": "Server is running"})
}

// GeneratePlan handler
// @Summary Generate weekly meal plan
// @Description Meal plan from weight, gender, age, height, activity level and goal
// @Tags Generate
// @Accept json
// @Produce json
// @Param request body object true "weight, gender, age, height, activity_level, goal"
// @Success 200 {object} model.GeneratePlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate-plan [post]
func (s *RestHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	s.generateFromBody(w, r, constant.EndpointGeneratePlan)
}

// GenerateWorkoutPlan handler
// @Summary Generate weekly workout routine
// @Tags Generate
// @Produce json
// @Param target query string true "muscle group"
// @Param gender query string true "gender"
// @Param weight query string true "weight in kg"
// @Param goal query string true "fitness goal"
// @Success 200 {object} model.GeneratePlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate-workout-plan [get]
func (s *RestHandler) GenerateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fields := make(map[string]any, len(query))
	for key := range query {
		fields[key] = query.Get(key)
	}
	s.generate(w, r, constant.EndpointGenerateWorkoutPlan, fields)
}

// GenerateMealPlanV2 handler
// @Summary Generate weekly meal plan from a full profile
// @Description Replies that are not JSON are returned as raw text
// @Tags Generate
// @Accept json
// @Produce json
// @Param request body object true "name, gender, age, height, target_weight, current_weight, activity_level, heart_beat, sleep, calories_burnt, steps"
// @Success 200 {object} model.GeneratePlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate-meal-plan-v2 [post]
func (s *RestHandler) GenerateMealPlanV2(w http.ResponseWriter, r *http.Request) {
	s.generateFromBody(w, r, constant.EndpointGenerateMealPlanV2)
}

// GenerateWorkoutPlanV2 handler
// @Summary Generate weekly workout routine from a full profile
// @Tags Generate
// @Accept json
// @Produce json
// @Param request body object true "name, gender, age, height, target_weight, current_weight, activity_level, heart_beat, sleep, calories_burnt, steps"
// @Success 200 {object} model.GeneratePlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate-workout-plan-v2 [post]
func (s *RestHandler) GenerateWorkoutPlanV2(w http.ResponseWriter, r *http.Request) {
	s.generateFromBody(w, r, constant.EndpointGenerateWorkoutPlanV2)
}

func (s *RestHandler) generateFromBody(w http.ResponseWriter, r *http.Request, endpoint constant.Endpoint) {
	fields, err := decodeObject(r.Body)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	s.generate(w, r, endpoint, fields)
}

func (s *RestHandler) generate(w http.ResponseWriter, r *http.Request, endpoint constant.Endpoint, fields map[string]any) {
	if s.GeneratorApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.GeneratorApp.Generate(r.Context(), endpoint, fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateUser handler
// @Summary Register user
// @Tags User
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "Create User Request"
// @Success 201 {object} model.CreateUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.CreateUser(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateUser handler
// @Summary Partially update user
// @Description Nested objects update only the leaves they name
// @Tags User
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body object true "partial user fields"
// @Success 200 {object} model.UpdateUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId} [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := decodeObject(r.Body)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.UpdateUser(ctx, mux.Vars(r)["userId"], fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive JWT token
// @Tags User
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid email format."))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// StoreMealPlanner handler
// @Summary Store a meal plan
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body model.StorePlanRequest true "Store Plan Request"
// @Success 201 {object} model.PlanRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /store-meal-planner [post]
func (s *RestHandler) StoreMealPlanner(w http.ResponseWriter, r *http.Request) {
	s.storePlan(w, r, constant.PlanKindMeal)
}

// StoreWorkoutPlanner handler
// @Summary Store a workout plan
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body model.StorePlanRequest true "Store Plan Request"
// @Success 201 {object} model.PlanRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /store-workout-planner [post]
func (s *RestHandler) StoreWorkoutPlanner(w http.ResponseWriter, r *http.Request) {
	s.storePlan(w, r, constant.PlanKindWorkout)
}

func (s *RestHandler) storePlan(w http.ResponseWriter, r *http.Request, kind constant.PlanKind) {
	ctx := r.Context()

	var req model.StorePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "UserId and aiResponse are required"))
		return
	}

	if s.PlannerApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.PlannerApp.StorePlan(ctx, kind, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListPlanners handler
// @Summary List stored plans
// @Description Oldest first. Without type both kinds are merged before the count is applied.
// @Tags Planner
// @Produce json
// @Param userId path string true "User ID"
// @Param count path int true "maximum number of records"
// @Param type query string false "meal or workout"
// @Success 200 {object} model.PlannerListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /planners/{userId}/{count} [get]
func (s *RestHandler) ListPlanners(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	count, err := strconv.Atoi(vars["count"])
	if err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid parameter: count must be a positive integer"))
		return
	}

	kind := constant.PlanKindAll
	if t := r.URL.Query().Get("type"); t != "" {
		kind = constant.PlanKind(t)
	}

	if s.PlannerApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.PlannerApp.ListPlans(ctx, vars["userId"], kind, count)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// decodeObject reads a JSON object keeping numbers as json.Number. An empty
// body decodes to an empty object.
func decodeObject(body io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	fields := map[string]any{}
	if err := dec.Decode(&fields); err != nil && !goerrors.Is(err, io.EOF) {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
