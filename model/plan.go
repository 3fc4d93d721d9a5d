package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/muhammadheryan/echobody/constant"
)

// ErrInvalidID is returned by stores that cannot interpret an identifier.
var ErrInvalidID = errors.New("invalid id")

// PlanRecord is an immutable stored completion reply
type PlanRecord struct {
	ID         string            `json:"_id"`
	UserID     string            `json:"userId"`
	AIResponse string            `json:"aiResponse"`
	Timestamp  time.Time         `json:"timestamp"`
	Kind       constant.PlanKind `json:"kind"`
}

// StorePlanRequest for POST /store-meal-planner and /store-workout-planner
type StorePlanRequest struct {
	UserID     string          `json:"userId"`
	AIResponse json.RawMessage `json:"aiResponse"`
}

// Content returns aiResponse as stored: JSON strings are unquoted, any other
// JSON value is kept as its raw text. null, false and zero count as empty.
func (r *StorePlanRequest) Content() string {
	raw := bytes.TrimSpace(r.AIResponse)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("false")) {
		return ""
	}
	var n json.Number
	if raw[0] != '"' && json.Unmarshal(raw, &n) == nil {
		if f, err := n.Float64(); err == nil && f == 0 {
			return ""
		}
	}
	var s string
	if raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}

type PlannerListResponse struct {
	Type     string       `json:"type"`
	Planners []PlanRecord `json:"planners"`
}
