package model_test

import (
	"encoding/json"
	"testing"

	"github.com/muhammadheryan/echobody/model"
	"github.com/stretchr/testify/assert"
)

func TestStorePlanRequest_Content(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "json string is unquoted", raw: `"{\"Day 1\":{}}"`, want: `{"Day 1":{}}`},
		{name: "object kept verbatim", raw: `{"Day 1": {"Breakfast": "Oats"}}`, want: `{"Day 1": {"Breakfast": "Oats"}}`},
		{name: "null is empty", raw: `null`, want: ""},
		{name: "absent is empty", raw: ``, want: ""},
		{name: "false is empty", raw: `false`, want: ""},
		{name: "zero is empty", raw: `0`, want: ""},
		{name: "zero float is empty", raw: `0.0`, want: ""},
		{name: "quoted zero is text", raw: `"0"`, want: "0"},
		{name: "number kept", raw: `42`, want: "42"},
		{name: "true kept", raw: `true`, want: "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := model.StorePlanRequest{AIResponse: json.RawMessage(tt.raw)}
			assert.Equal(t, tt.want, req.Content())
		})
	}
}
