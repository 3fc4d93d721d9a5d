package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/echobody/thirdparty/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(contents ...string) string {
	choices := make([]map[string]any, 0, len(contents))
	for i, c := range contents {
		choices = append(choices, map[string]any{
			"index":         i,
			"message":       map[string]any{"role": "assistant", "content": c},
			"finish_reason": "stop",
		})
	}
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-3.5-turbo",
		"choices": choices,
	})
	return string(body)
}

func TestClient_Complete(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		want       string
		wantErr    error
		wantPrompt string
	}{
		{
			name:       "success: first choice text",
			status:     http.StatusOK,
			body:       completionBody(`{"Day 1":{}}`, "ignored"),
			want:       `{"Day 1":{}}`,
			wantPrompt: "plan please",
		},
		{
			name:    "error: no choices",
			status:  http.StatusOK,
			body:    completionBody(),
			wantErr: openai.ErrNoCompletion,
		},
		{
			name:    "error: empty content",
			status:  http.StatusOK,
			body:    completionBody(""),
			wantErr: openai.ErrNoCompletion,
		},
		{
			name:    "error: upstream status",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"message":"boom","type":"server_error"}}`,
			wantErr: openai.ErrUpstream,
		},
		{
			name:    "error: malformed body",
			status:  http.StatusOK,
			body:    `{"choices":`,
			wantErr: openai.ErrUpstream,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				raw, _ := io.ReadAll(r.Body)
				var req struct {
					Model    string `json:"model"`
					Messages []struct {
						Role    string `json:"role"`
						Content string `json:"content"`
					} `json:"messages"`
				}
				_ = json.Unmarshal(raw, &req)
				assert.Equal(t, "gpt-3.5-turbo", req.Model)
				if tt.wantPrompt != "" && assert.Len(t, req.Messages, 1) {
					assert.Equal(t, "user", req.Messages[0].Role)
					assert.Equal(t, tt.wantPrompt, req.Messages[0].Content)
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := openai.NewClient("test-key", srv.URL+"/v1")
			prompt := tt.wantPrompt
			if prompt == "" {
				prompt = "anything"
			}

			got, err := client.Complete(context.Background(), "gpt-3.5-turbo", prompt)
			assert.Equal(t, 1, calls, "exactly one upstream call")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
