package event

import "fmt"

// EventError marks a request that failed validation or referenced a missing
// record, as opposed to an infrastructure failure.
type EventError struct {
	Code    string
	Message string
}

func (e *EventError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewEventError(msg string) error {
	return &EventError{
		Code:    "eventError",
		Message: msg,
	}
}
