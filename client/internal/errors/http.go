package errors

import (
	"encoding/json"
	"fmt"
)

// NewTransportError wraps a failure that happened before any response arrived.
func NewTransportError(op string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Transport,
		Op:         op,
		Underlying: err,
	}
}

// NewEncodeError wraps a failure to marshal a request body.
func NewEncodeError(op string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Encode,
		Op:         op,
		Underlying: fmt.Errorf("encode request: %w", err),
	}
}

// NewDecodeError wraps a JSON decoding failure of a response body.
func NewDecodeError(op string, statusCode int, body []byte, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Decode,
		Op:         op,
		StatusCode: statusCode,
		Body:       string(body),
		Underlying: fmt.Errorf("decode response: %w", err),
	}
}

// NewStatusError builds an error for a non-2xx response. Feedly reports
// failures as {"errorCode":..,"errorId":..,"errorMessage":..}; the message is
// lifted out when present.
func NewStatusError(op string, statusCode int, body []byte) *ClassifiedError {
	var payload struct {
		ErrorMessage string `json:"errorMessage"`
	}
	_ = json.Unmarshal(body, &payload)
	return &ClassifiedError{
		Category:   Status,
		Op:         op,
		StatusCode: statusCode,
		Body:       string(body),
		Message:    payload.ErrorMessage,
		Underlying: fmt.Errorf("%s failed: HTTP %d", op, statusCode),
	}
}
