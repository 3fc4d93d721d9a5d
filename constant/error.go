package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrUpstream
	ErrUserNotFound
	ErrPlannerNotFound
	ErrInvalidCredential
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "Internal server error",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrUpstream:          "Failed to get a valid response from OpenAI",
	ErrUserNotFound:      "User not found",
	ErrPlannerNotFound:   "No planners found for this user",
	ErrInvalidCredential: "Invalid email or password.",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrUpstream:          http.StatusInternalServerError,
	ErrUserNotFound:      http.StatusNotFound,
	ErrPlannerNotFound:   http.StatusNotFound,
	ErrInvalidCredential: http.StatusUnauthorized,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrUpstream:          "0005",
	ErrUserNotFound:      "0006",
	ErrPlannerNotFound:   "0007",
	ErrInvalidCredential: "0008",
}
