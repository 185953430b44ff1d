package cmd

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"roamstats/internal/application"
	"roamstats/internal/domain"
)

func TestSelectedKeys(t *testing.T) {
	keys, err := selectedKeys([]string{"pages", "codeBlocks"}, []string{"TODO"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Key{
		domain.MetricKey(domain.MetricPages),
		domain.MetricKey(domain.MetricCodeBlocks),
		domain.TagKey(domain.TagTODO),
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("selectedKeys() mismatch (-want +got):\n%s", diff)
	}

	if _, err := selectedKeys([]string{"wordsPerMinute"}, nil); !errors.Is(err, application.ErrUnknownMetric) {
		t.Errorf("expected ErrUnknownMetric, got %v", err)
	}
	if _, err := selectedKeys(nil, []string{"todo"}); !errors.Is(err, application.ErrUnknownTag) {
		t.Errorf("expected ErrUnknownTag, got %v", err)
	}
}

func TestCheckSettingName(t *testing.T) {
	for _, name := range []string{"auto-load", "auto-load-stats"} {
		if err := checkSettingName(name); err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
	if err := checkSettingName("theme"); err == nil {
		t.Error("expected error for unknown setting")
	}
}
