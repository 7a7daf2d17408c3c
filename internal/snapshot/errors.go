package snapshot

import "fmt"

// StoreError represents a snapshot store failure. Capture treats these as
// fatal; a lost snapshot is a hole in the regression corpus.
type StoreError struct {
	ID      string
	Op      string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("snapshot %s failed", e.Op)
	if e.ID != "" {
		msg += " for " + e.ID
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// NotFoundError is returned when no snapshot exists under the given id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("snapshot not found: %s", e.ID)
}

// ImmutableError is returned when a save would alter the raw text of an
// existing snapshot.
type ImmutableError struct {
	ID string
}

func (e *ImmutableError) Error() string {
	return fmt.Sprintf("snapshot %s: raw_text is immutable after capture", e.ID)
}
