package user

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/muhammadheryan/echobody/model"
	validatorx "github.com/muhammadheryan/echobody/utils/validator"
)

var errInvalidValue = errors.New("invalid value")

type coerceFunc func(value any) (any, error)

// updatePaths lists every leaf a PATCH may write and how its value is coerced
// into the stored type. Paths missing here are dropped.
var updatePaths = map[string]coerceFunc{
	"name":        coerceName,
	"gender":      coerceString,
	"dateOfBirth": coerceDate,
	"email":       coerceEmail,

	"health.weight":            coerceNumber,
	"health.start_weight":      coerceNumber,
	"health.target_weight":     coerceNumber,
	"health.height":            coerceNumber,
	"health.activity_level":    coerceString,
	"health.target_exercise":   coerceString,
	"health.bmi":               coerceNumber,
	"health.steps":             coerceNumber,
	"health.target_steps":      coerceNumber,
	"health.caloriesBurned":    coerceNumber,
	"health.sleepHours":        coerceNumber,
	"health.heartRateReadings": coerceReadings,

	"device.user_id":      coerceName,
	"device.resource":     coerceString,
	"device.reference_id": coerceString,
	"device.lan":          coerceString,
}

func coerceString(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errInvalidValue
	}
	return s, nil
}

func coerceName(value any) (any, error) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil, errInvalidValue
	}
	return strings.TrimSpace(s), nil
}

func coerceEmail(value any) (any, error) {
	s, ok := value.(string)
	if !ok || !strings.Contains(s, "@") {
		return nil, errInvalidValue
	}
	return normalizeEmail(s), nil
}

func coerceDate(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errInvalidValue
	}
	return parseDate(s)
}

func coerceNumber(value any) (any, error) {
	switch n := value.(type) {
	case json.Number:
		return n.Float64()
	case float64:
		return n, nil
	default:
		return nil, errInvalidValue
	}
}

func coerceReadings(value any) (any, error) {
	if _, ok := value.([]any); !ok {
		return nil, errInvalidValue
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var readings []model.HeartRateReading
	if err := json.Unmarshal(raw, &readings); err != nil {
		return nil, errInvalidValue
	}
	for _, r := range readings {
		if err := validatorx.ValidateStruct(r); err != nil {
			return nil, errInvalidValue
		}
	}
	return readings, nil
}

// buildUpdateSet turns flattened request paths into stored paths. It returns
// the first path, in lexical order, whose value cannot be coerced.
func buildUpdateSet(flat map[string]any, hash func(string) (string, error)) (map[string]any, string, error) {
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	set := make(map[string]any, len(flat))
	for _, path := range paths {
		value := flat[path]
		if path == "password" {
			s, ok := value.(string)
			if !ok || s == "" {
				return nil, path, errInvalidValue
			}
			hashed, err := hash(s)
			if err != nil {
				return nil, path, err
			}
			set["passwordHash"] = hashed
			continue
		}

		coerce, ok := updatePaths[path]
		if !ok {
			continue
		}
		coerced, err := coerce(value)
		if err != nil {
			return nil, path, errInvalidValue
		}
		set[path] = coerced
	}
	return set, "", nil
}
