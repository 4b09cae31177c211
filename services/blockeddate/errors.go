package blockeddate

// ValidationError reports a malformed or out-of-range payload. Fields carries
// per-field messages for the response envelope.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a duplicate active block for a date.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports an unknown blocked-date id.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
