package generator

import (
	"github.com/muhammadheryan/echobody/constant"
	"github.com/muhammadheryan/echobody/prompt"
	validatorx "github.com/muhammadheryan/echobody/utils/validator"
)

// endpointDef binds a generation route to its request schema, prompt
// template, reply parsing mode and success message.
type endpointDef struct {
	schema   validatorx.Schema
	template prompt.TemplateID
	mode     constant.ParseMode
	message  string
	// echo returns the request fields as requestData
	echo bool
}

var v2Required = []string{"name", "gender", "age", "height", "target_weight", "current_weight"}

func v2Schema(activityEnum []string) validatorx.Schema {
	schema := make(validatorx.Schema, 0, len(v2Required)+5)
	for _, name := range v2Required {
		schema = append(schema, validatorx.Field{Name: name, Required: true})
	}
	schema = append(schema,
		validatorx.Field{Name: "activity_level", Required: true, Enum: activityEnum},
		validatorx.Field{Name: "heart_beat"},
		validatorx.Field{Name: "sleep"},
		validatorx.Field{Name: "calories_burnt"},
		validatorx.Field{Name: "steps"},
	)
	return schema
}

var endpoints = map[constant.Endpoint]endpointDef{
	constant.EndpointGeneratePlan: {
		schema: validatorx.Schema{
			{Name: "weight", Required: true},
			{Name: "gender", Required: true},
			{Name: "age", Required: true},
			{Name: "height", Required: true},
			{Name: "activity_level", Required: true, Enum: constant.ActivityLevels},
			{Name: "goal", Required: true, Enum: constant.Goals},
		},
		template: prompt.MealPlanV1,
		mode:     constant.ParseStrict,
		message:  "Workout meals generated successfully.",
	},
	constant.EndpointGenerateWorkoutPlan: {
		schema: validatorx.Schema{
			{Name: "target", Required: true, Enum: constant.MuscleTargets},
			{Name: "gender", Required: true},
			{Name: "weight", Required: true},
			{Name: "goal", Required: true, Enum: constant.Goals},
		},
		template: prompt.WorkoutPlanV1,
		mode:     constant.ParseStrict,
		message:  "Workout routine created successfully.",
	},
	constant.EndpointGenerateMealPlanV2: {
		schema:   v2Schema(constant.ActivityLevels),
		template: prompt.MealPlanV2,
		mode:     constant.ParseLenient,
		message:  "Meal plan generated successfully.",
		echo:     true,
	},
	constant.EndpointGenerateWorkoutPlanV2: {
		schema:   v2Schema(nil),
		template: prompt.WorkoutPlanV2,
		mode:     constant.ParseStrict,
		message:  "Workout routine created successfully.",
		echo:     true,
	},
}
