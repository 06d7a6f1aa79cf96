package neshan

import "fmt"

// ServiceError is the structured failure body the service returns on
// non-2xx statuses. Callers can branch on Code with errors.As.
type ServiceError struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("neshan: %s (code %d)", e.Message, e.Code)
}

// DecodeError reports a response body which doesn't match the documented
// shape, success and failure branches alike. It signals a contract
// mismatch rather than a documented service failure.
type DecodeError struct {
	Status int
	err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("neshan: decoding %d response: %s", e.Status, e.err)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}
