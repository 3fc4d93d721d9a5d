package validatorx

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type Reason int

const (
	ReasonMissing Reason = iota + 1
	ReasonNotInEnum
)

// Field is one entry of a declarative request schema.
type Field struct {
	Name     string
	Required bool
	Enum     []string
}

// Schema is checked in declaration order.
type Schema []Field

type Violation struct {
	Field   string
	Reason  Reason
	Allowed []string
}

func (v *Violation) Message() string {
	if v.Reason == ReasonNotInEnum {
		return fmt.Sprintf("Invalid parameter: %s must be one of %s", v.Field, strings.Join(v.Allowed, ", "))
	}
	return fmt.Sprintf("Missing required parameter: %s", v.Field)
}

func (v *Violation) Error() string {
	return v.Message()
}

// ValidateFields returns the first violation in schema order, or nil.
func ValidateFields(schema Schema, fields map[string]any) *Violation {
	for _, f := range schema {
		value, ok := fields[f.Name]
		present := ok && IsPresent(value)

		if !present {
			if f.Required {
				return &Violation{Field: f.Name, Reason: ReasonMissing}
			}
			continue
		}

		if len(f.Enum) > 0 {
			s, isString := value.(string)
			if !isString || !slices.Contains(f.Enum, s) {
				return &Violation{Field: f.Name, Reason: ReasonNotInEnum, Allowed: f.Enum}
			}
		}
	}
	return nil
}

// IsPresent treats nil, empty strings, zero numbers and false as absent.
func IsPresent(value any) bool {
	if value == nil {
		return false
	}
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return err != nil || f != 0
	}
	return get().Var(value, "required") == nil
}
