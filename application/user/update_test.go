package user

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/muhammadheryan/echobody/model"
	"github.com/muhammadheryan/echobody/utils/dotted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainHash(s string) (string, error) { return "hashed:" + s, nil }

func TestBuildUpdateSet(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     map[string]any
		wantPath string
	}{
		{
			name: "nested numbers become floats",
			body: `{"health":{"weight":80,"sleepHours":7.5}}`,
			want: map[string]any{"health.weight": 80.0, "health.sleepHours": 7.5},
		},
		{
			name: "date and device fields",
			body: `{"dateOfBirth":"1990-01-02","device":{"user_id":" dev-1 ","lan":"en"}}`,
			want: map[string]any{
				"dateOfBirth":    time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
				"device.user_id": "dev-1",
				"device.lan":     "en",
			},
		},
		{
			name: "heart rate readings array",
			body: `{"health":{"heartRateReadings":[{"timestamp":"2026-01-01T00:00:00Z","heartRate":64}]}}`,
			want: map[string]any{"health.heartRateReadings": []model.HeartRateReading{
				{Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), HeartRate: 64},
			}},
		},
		{
			name: "password replaced by hash, protected fields ignored",
			body: `{"password":"pw","authToken":"x","lastLogin":"2020-01-01","_id":"z"}`,
			want: map[string]any{"passwordHash": "hashed:pw"},
		},
		{
			name: "empty object sets nothing",
			body: `{"health":{}}`,
			want: map[string]any{},
		},
		{name: "blank name", body: `{"name":"  "}`, wantPath: "name"},
		{name: "email without at sign", body: `{"email":"nobody"}`, wantPath: "email"},
		{name: "reading missing heart rate", body: `{"health":{"heartRateReadings":[{"timestamp":"2026-01-01T00:00:00Z"}]}}`, wantPath: "health.heartRateReadings"},
		{name: "first bad path in lexical order", body: `{"name":1,"gender":2}`, wantPath: "gender"},
		{name: "empty password", body: `{"password":""}`, wantPath: "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := json.NewDecoder(strings.NewReader(tt.body))
			dec.UseNumber()
			var body map[string]any
			require.NoError(t, dec.Decode(&body))

			got, path, err := buildUpdateSet(dotted.Flatten(body), plainHash)
			if tt.wantPath != "" {
				assert.ErrorIs(t, err, errInvalidValue)
				assert.Equal(t, tt.wantPath, path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
