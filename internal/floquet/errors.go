package floquet

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every [ConfigurationError].
var ErrConfiguration = errors.New("floquet: invalid configuration")

// ConfigurationError reports which parameter was rejected and why.
type ConfigurationError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("floquet: invalid %s=%v: %s", e.Param, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func invalid(param string, value any, reason string) error {
	return &ConfigurationError{Param: param, Value: value, Reason: reason}
}
