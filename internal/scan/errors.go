package scan

import (
	"errors"
	"fmt"
)

// #region errors

// ConfigError reports a malformed generator range or scan option, detected
// before or at scan start. Starting a run with one is fatal and never retried.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "scan config: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// ErrExhausted signals that a scan's point sequence has no more points. It is
// an internal loop-termination signal, not a failure, and is never surfaced
// from a completed run.
var ErrExhausted = errors.New("scan points exhausted")

// #endregion errors
