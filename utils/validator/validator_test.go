package validatorx_test

import (
	"testing"

	"github.com/muhammadheryan/echobody/model"
	validatorx "github.com/muhammadheryan/echobody/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestValidateStruct_CreateUser(t *testing.T) {
	tests := []struct {
		name      string
		req       model.CreateUserRequest
		wantField string
		wantMsg   string
	}{
		{
			name: "success",
			req:  model.CreateUserRequest{Name: "Asha", Email: "asha@example.com", Health: &model.Health{Weight: ptr(60)}},
		},
		{
			name:      "error: missing name",
			req:       model.CreateUserRequest{Email: "asha@example.com"},
			wantField: "Name",
			wantMsg:   "Name is required and must be a non-empty string.",
		},
		{
			name:      "error: email without at",
			req:       model.CreateUserRequest{Name: "Asha", Email: "asha.example.com"},
			wantField: "Email",
			wantMsg:   "Invalid email format.",
		},
		{
			name:      "error: negative nested weight",
			req:       model.CreateUserRequest{Name: "Asha", Health: &model.Health{Weight: ptr(-3)}},
			wantField: "Health.Weight",
			wantMsg:   "Weight must be a positive number.",
		},
		{
			name:      "error: device without user id",
			req:       model.CreateUserRequest{Name: "Asha", Device: &model.Device{Resource: "fitbit"}},
			wantField: "Device.UserID",
			wantMsg:   "Device user_id is required.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantField, validatorx.FailedField(err))
			assert.Equal(t, tt.wantMsg, validatorx.Message(err, model.CreateUserMessages, "invalid request"))
		})
	}
}
