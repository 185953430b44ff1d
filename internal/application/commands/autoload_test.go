package commands

import (
	"context"
	"errors"
	"testing"

	"roamstats/internal/application"
)

type memSettings struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]string)}
}

func (m *memSettings) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memSettings) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func TestGetAutoLoadCommand(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   bool
	}{
		{name: "unset defaults to true", stored: nil, want: true},
		{name: "stored true", stored: strPtr("true"), want: true},
		{name: "stored false", stored: strPtr("false"), want: false},
		{name: "garbage defaults to true", stored: strPtr("maybe"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemSettings()
			if tt.stored != nil {
				store.values[AutoLoadSetting] = *tt.stored
			}
			got, err := NewGetAutoLoadCommand(store).Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetAutoLoadCommand_StoreError(t *testing.T) {
	store := newMemSettings()
	store.getErr = errors.New("disk on fire")

	got, err := NewGetAutoLoadCommand(store).Execute(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !got {
		t.Error("preference should fall back to enabled on error")
	}
}

func TestSetAutoLoadCommand(t *testing.T) {
	store := newMemSettings()
	ctx := context.Background()

	if err := NewSetAutoLoadCommand(store, false).Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.values[AutoLoadSetting] != "false" {
		t.Errorf("stored %q, want false", store.values[AutoLoadSetting])
	}

	got, _ := NewGetAutoLoadCommand(store).Execute(ctx)
	if got {
		t.Error("expected preference to read back as false")
	}
}

func TestEnsureAutoLoadDefault(t *testing.T) {
	ctx := context.Background()

	store := newMemSettings()
	if err := EnsureAutoLoadDefault(ctx, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.values[AutoLoadSetting] != "true" {
		t.Errorf("expected default true, got %q", store.values[AutoLoadSetting])
	}

	store.values[AutoLoadSetting] = "false"
	if err := EnsureAutoLoadDefault(ctx, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.values[AutoLoadSetting] != "false" {
		t.Error("existing boolean must not be overwritten")
	}

	store.values[AutoLoadSetting] = "sometimes"
	_ = EnsureAutoLoadDefault(ctx, store)
	if store.values[AutoLoadSetting] != "true" {
		t.Error("non-boolean value should be replaced with true")
	}
}

func TestParseAutoLoad(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"on", true, false},
		{"0", false, false},
		{"off", false, false},
		{"perhaps", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAutoLoad(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAutoLoad(%q) error = %v", tt.in, err)
			}
			if err != nil && !errors.Is(err, application.ErrInvalidSetting) {
				t.Errorf("expected ErrInvalidSetting, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAutoLoad(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
