package constant

type PlanKind string

const (
	PlanKindMeal    PlanKind = "meal"
	PlanKindWorkout PlanKind = "workout"
	PlanKindAll     PlanKind = "all"
)

// PlanKindLabel is the "type" reported by the planner listing.
var PlanKindLabel = map[PlanKind]string{
	PlanKindMeal:    "Meal Planner",
	PlanKindWorkout: "Workout Planner",
	PlanKindAll:     "All Planner",
}

// Endpoint identifies one plan generation route.
type Endpoint string

const (
	EndpointGeneratePlan          Endpoint = "generate-plan"
	EndpointGenerateWorkoutPlan   Endpoint = "generate-workout-plan"
	EndpointGenerateMealPlanV2    Endpoint = "generate-meal-plan-v2"
	EndpointGenerateWorkoutPlanV2 Endpoint = "generate-workout-plan-v2"
)

// ParseMode decides what happens when a completion is not valid JSON.
type ParseMode int

const (
	ParseStrict ParseMode = iota
	ParseLenient
)

const DefaultBcryptCost = 10
