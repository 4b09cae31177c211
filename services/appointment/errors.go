package appointment

// ValidationError reports a malformed or out-of-range booking payload.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// SlotUnavailableError reports a requested slot that is blocked or taken.
type SlotUnavailableError struct {
	Message string
}

func (e *SlotUnavailableError) Error() string { return e.Message }

// NotFoundError reports an unknown appointment id.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// CaptchaError reports a failed CAPTCHA verification.
type CaptchaError struct {
	Message string
}

func (e *CaptchaError) Error() string { return e.Message }
