package exceptions

import (
	"errors"
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	err           error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	loc := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, loc.File, loc.Line, loc.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.err
}

// BuildNewCustomError wraps err with the given status and messages. When err is already a
// CustomError its status and messages are kept and only the caller location is appended, so an
// error travelling up from a repository still reports the original 4xx to the client.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	// skip the factory closure in types.go as well
	location := getLocation(3)

	var existing *CustomError
	if errors.As(err, &existing) {
		existing.Locations = append(existing.Locations, location)
		return existing
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		err:           err,
	}
}

// StatusCode returns the HTTP status carried by err, 500 for anything that is not a CustomError.
func StatusCode(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

// ClientMessage returns the message that would be shown to the API client for err.
func ClientMessage(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			Line:         0,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
