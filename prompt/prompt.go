// Package prompt renders the instruction text sent to the completion API.
//
// Every template embeds a literal JSON exemplar of the reply shape. The
// generator parses replies assuming they mirror that exemplar, so editing an
// exemplar changes the parsing contract of its endpoint.
package prompt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	validatorx "github.com/muhammadheryan/echobody/utils/validator"
)

type TemplateID string

const (
	MealPlanV1    TemplateID = "meal-plan-v1"
	WorkoutPlanV1 TemplateID = "workout-plan-v1"
	MealPlanV2    TemplateID = "meal-plan-v2"
	WorkoutPlanV2 TemplateID = "workout-plan-v2"
)

// Template is a named skeleton plus the placeholders it consumes.
type Template struct {
	ID           TemplateID
	Placeholders []string
	tmpl         *template.Template
}

var registry = map[TemplateID]*Template{}

func register(id TemplateID, placeholders []string, text string) {
	registry[id] = &Template{
		ID:           id,
		Placeholders: placeholders,
		tmpl:         template.Must(template.New(string(id)).Option("missingkey=error").Parse(text)),
	}
}

func init() {
	register(MealPlanV1, []string{"weight", "gender", "age", "height", "activity_level", "goal"}, mealPlanV1Text)
	register(WorkoutPlanV1, []string{"weight", "gender", "target", "goal"}, workoutPlanV1Text)
	register(MealPlanV2, []string{
		"name", "gender", "age", "height", "current_weight", "target_weight",
		"activity_level", "heart_beat", "sleep", "calories_burnt", "steps",
	}, mealPlanV2Text)
	register(WorkoutPlanV2, []string{
		"current_weight", "gender", "age", "height", "target_weight",
		"heart_beat", "activity_level", "sleep", "calories_burnt", "steps",
	}, workoutPlanV2Text)
}

// Lookup returns the registered template for id.
func Lookup(id TemplateID) (*Template, bool) {
	t, ok := registry[id]
	return t, ok
}

// Build substitutes fields into the template. Placeholders whose field is
// absent or empty render as "".
func Build(id TemplateID, fields map[string]any) (string, error) {
	t, ok := Lookup(id)
	if !ok {
		return "", fmt.Errorf("unknown prompt template %q", id)
	}

	values := make(map[string]string, len(t.Placeholders))
	for _, name := range t.Placeholders {
		values[name] = ""
		if v, ok := fields[name]; ok && validatorx.IsPresent(v) {
			values[name] = Stringify(v)
		}
	}

	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, values); err != nil {
		return "", fmt.Errorf("render prompt %q: %w", id, err)
	}
	return sb.String(), nil
}

// Stringify renders a decoded request value the way it was sent: numbers keep
// their decimal text.
func Stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
