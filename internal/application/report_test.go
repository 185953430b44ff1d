package application

import (
	"strings"
	"testing"

	"roamstats/internal/domain"
)

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatInt(tt.in); got != tt.want {
			t.Errorf("FormatInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayout_CoversCatalog(t *testing.T) {
	seen := make(map[domain.Key]bool)
	for _, row := range Layout() {
		for _, k := range row.Keys {
			if seen[k] {
				t.Errorf("key %s appears twice", k)
			}
			seen[k] = true
		}
	}
	for _, k := range domain.AllKeys() {
		if !seen[k] {
			t.Errorf("key %s missing from layout", k)
		}
	}
}

func TestFormatReport(t *testing.T) {
	res := domain.NewResults()
	res.Metrics[domain.MetricPages] = 1500
	res.Metrics[domain.MetricCodeBlocks] = 3
	res.Tags[domain.TagTODO] = 0

	out := FormatReport("my-graph", res)

	for _, want := range []string{
		"Graph: my-graph\n",
		"Pages: 1,500\n",
		"Code Blocks / Characters: 3 / " + Placeholder + "\n",
		"TODO: 0\n",
		"kanban: " + Placeholder + "\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
