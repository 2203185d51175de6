package adapter

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrRequestFailed matches every [*RequestError] via errors.Is.
	ErrRequestFailed = errors.New("Request failed")

	// ErrDecodeResponse is wrapped when a 2xx body is not the expected JSON.
	ErrDecodeResponse = errors.New("decode response")
)

// RequestError is returned for any non-2xx response. Message is the trimmed
// response body, or "Request failed" when the body is empty.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	if message == "" {
		message = ErrRequestFailed.Error()
	}

	return &RequestError{StatusCode: resp.StatusCode(), Message: message}
}
