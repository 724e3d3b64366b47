package serializer

import (
	"go.uber.org/zap"
)

var log *zap.Logger = zap.NewNop()

// SetLogger installs the logger used when responses carry unexpected errors.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK wraps a successful payload.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Err wraps a failure. The underlying error is logged, never leaked beyond
// the provided message.
func Err(msg string, err error) Response {
	if err != nil {
		log.Debug("request failed", zap.String("msg", msg), zap.Error(err))
	}
	return Response{Success: false, Error: msg}
}

// ParamErr is a failure caused by missing or malformed input.
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(msg, err)
}

// DBErr is a data-store failure.
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(msg, err)
}

// AuthErr is an authentication failure.
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(msg, nil)
}
