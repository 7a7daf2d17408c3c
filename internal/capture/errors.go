package capture

import "fmt"

// Error represents a failure while capturing page text from the browser.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := "capture error"
	if e.URL != "" {
		msg += " for " + e.URL
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NoJobTabError is returned when no open browser tab shows a job posting.
type NoJobTabError struct {
	Tabs int
}

func (e *NoJobTabError) Error() string {
	return fmt.Sprintf("no job posting tab found among %d open tabs", e.Tabs)
}
