package validatorx

import (
	"errors"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent)
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
	})
}

func get() *gpvalidator.Validate {
	Init()
	return v
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	return get().Struct(s)
}

// FailedField returns the struct namespace of the first failing field with the
// root type stripped, e.g. "Health.Weight".
func FailedField(err error) string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}
	ns := verrs[0].StructNamespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

// Message resolves the first failure of err against a namespace→message table.
func Message(err error, messages map[string]string, fallback string) string {
	if msg, ok := messages[FailedField(err)]; ok {
		return msg
	}
	return fallback
}
