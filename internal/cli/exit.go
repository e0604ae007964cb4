package cli

// Exit codes returned by the vermutcalc binary.
const (
	ExitCodeOK             = 0
	ExitCodeError          = 1
	ExitCodeBelowThreshold = 2
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrBelowThreshold is reported by calc --fail-below-threshold when the
// wine share is under the legal minimum.
const ErrBelowThreshold = constError("wine share below the legal vermouth threshold")

// ExitError carries a process exit code alongside the error that caused it.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code, defaulting to ExitCodeError.
func (e *ExitError) ExitCode() int {
	if e.Code == 0 {
		return ExitCodeError
	}
	return e.Code
}
