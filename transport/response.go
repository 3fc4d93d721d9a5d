package transport

import (
	"encoding/json"
	goerrors "errors"
	"net/http"

	"github.com/muhammadheryan/echobody/constant"
	"github.com/muhammadheryan/echobody/utils/errors"
	"github.com/muhammadheryan/echobody/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

// writeError renders a CustomError; anything else is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	var customErr errors.CustomError
	if !goerrors.As(err, &customErr) {
		customErr = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, customErr.ErrorHTTPCode(), ErrorResponse{
		Status:  false,
		Code:    customErr.ErrorCode(),
		Message: customErr.Error(),
	})
}
