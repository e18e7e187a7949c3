package fdc

import "fmt"

// NotConfiguredError is an error used to encode when the client
// has no API key and cannot reach the upstream API
// (reported immediately, without attempting a network call)
type NotConfiguredError struct {
	Operation string
}

// NewNotConfiguredError constructs a new NotConfiguredError
func NewNotConfiguredError(operation string) *NotConfiguredError {
	return &NotConfiguredError{
		Operation: operation,
	}
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("cannot %s: FoodData Central API key is not configured (set FDC_API_KEY)",
		e.Operation)
}

// InvalidInputError is an error used to encode when the caller
// violated a documented constraint
// (reported immediately, without attempting a network call)
type InvalidInputError struct {
	Message string
}

// NewInvalidInputError constructs a new InvalidInputError
func NewInvalidInputError(message string) *InvalidInputError {
	return &InvalidInputError{
		Message: message,
	}
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// UpstreamError is an error used to encode a network failure or
// non-2xx response from the upstream API after the retry budget
// has been exhausted.
// StatusCode is 0 when no HTTP response was received
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

// NewUpstreamError constructs a new UpstreamError
func NewUpstreamError(endpoint string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Err:        err,
	}
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("FoodData Central API error on %s: HTTP %d", e.Endpoint, e.StatusCode)
	}

	return fmt.Sprintf("FoodData Central API request to %s failed: %s", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// EmptyResultError is an error used to encode when every item
// in a batch operation failed and there is nothing to return
type EmptyResultError struct {
	Operation string
}

// NewEmptyResultError constructs a new EmptyResultError
func NewEmptyResultError(operation string) *EmptyResultError {
	return &EmptyResultError{
		Operation: operation,
	}
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no valid food data found to %s", e.Operation)
}
