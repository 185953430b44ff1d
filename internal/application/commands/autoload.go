package commands

import (
	"context"
	"fmt"
	"strconv"

	"roamstats/internal/application"
	"roamstats/internal/ports"
)

// AutoLoadSetting is the preference controlling whether the drawer fetches
// every stat when it opens
const AutoLoadSetting = "auto-load-stats"

// GetAutoLoadCommand reads the auto-load preference
type GetAutoLoadCommand struct {
	store ports.SettingsStore
}

// NewGetAutoLoadCommand creates a new GetAutoLoadCommand
func NewGetAutoLoadCommand(store ports.SettingsStore) *GetAutoLoadCommand {
	return &GetAutoLoadCommand{store: store}
}

// Execute returns the preference. A missing or non-boolean value reads as
// enabled.
func (c *GetAutoLoadCommand) Execute(ctx context.Context) (bool, error) {
	raw, ok, err := c.store.Get(ctx, AutoLoadSetting)
	if err != nil {
		return true, fmt.Errorf("read %s: %w", AutoLoadSetting, err)
	}
	if !ok {
		return true, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true, nil
	}
	return v, nil
}

// SetAutoLoadCommand writes the auto-load preference
type SetAutoLoadCommand struct {
	store   ports.SettingsStore
	Enabled bool
}

// NewSetAutoLoadCommand creates a new SetAutoLoadCommand
func NewSetAutoLoadCommand(store ports.SettingsStore, enabled bool) *SetAutoLoadCommand {
	return &SetAutoLoadCommand{
		store:   store,
		Enabled: enabled,
	}
}

// Execute stores the preference
func (c *SetAutoLoadCommand) Execute(ctx context.Context) error {
	if err := c.store.Set(ctx, AutoLoadSetting, strconv.FormatBool(c.Enabled)); err != nil {
		return fmt.Errorf("write %s: %w", AutoLoadSetting, err)
	}
	return nil
}

// ParseAutoLoad parses a user supplied on/off value
func ParseAutoLoad(s string) (bool, error) {
	switch s {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, &application.SettingError{Key: AutoLoadSetting, Value: s, Reason: "expected true or false"}
	}
	return v, nil
}

// EnsureAutoLoadDefault stores true when the preference has never been
// written or holds something other than a boolean
func EnsureAutoLoadDefault(ctx context.Context, store ports.SettingsStore) error {
	raw, ok, err := store.Get(ctx, AutoLoadSetting)
	if err != nil {
		return fmt.Errorf("read %s: %w", AutoLoadSetting, err)
	}
	if ok {
		if _, err := strconv.ParseBool(raw); err == nil {
			return nil
		}
	}
	return NewSetAutoLoadCommand(store, true).Execute(ctx)
}
