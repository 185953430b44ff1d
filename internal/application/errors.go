package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrUnknownMetric  = errors.New("unknown metric")
	ErrUnknownTag     = errors.New("unknown tag")
	ErrInvalidSetting = errors.New("invalid setting")
	ErrEmptyTitle     = errors.New("page title is empty")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SettingError represents a stored preference that could not be read or written
type SettingError struct {
	Key    string
	Value  string
	Reason string
}

func (e *SettingError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("setting %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("setting %s=%q: %s", e.Key, e.Value, e.Reason)
}

func (e *SettingError) Is(target error) bool {
	return target == ErrInvalidSetting
}
