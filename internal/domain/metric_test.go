package domain

import (
	"strings"
	"testing"
)

func TestCatalog_EveryMetricHasQuery(t *testing.T) {
	if len(Metrics) != 12 {
		t.Fatalf("expected 12 metrics, got %d", len(Metrics))
	}
	seen := make(map[MetricID]bool)
	for _, id := range Metrics {
		if seen[id] {
			t.Errorf("duplicate metric %s", id)
		}
		seen[id] = true

		q, ok := MetricQuery(id)
		if !ok || !strings.HasPrefix(q, "[:find") {
			t.Errorf("metric %s has no query", id)
		}
		if id.Label() == string(id) {
			t.Errorf("metric %s has no label", id)
		}
	}
}

func TestCatalog_Tags(t *testing.T) {
	if len(Tags) != 8 {
		t.Fatalf("expected 8 tags, got %d", len(Tags))
	}
	for _, tag := range Tags {
		if !tag.Valid() {
			t.Errorf("tag %s should be valid", tag)
		}
	}
	if TagName("nope").Valid() {
		t.Error("unknown tag should be invalid")
	}
}

func TestMetricQueries_Filters(t *testing.T) {
	code, _ := MetricQuery(MetricCodeBlocks)
	if !strings.Contains(code, "```") {
		t.Error("code block query should match fences")
	}
	if strings.Contains(code, "(not") {
		t.Error("code block query should not negate")
	}

	text, _ := MetricQuery(MetricNonCodeBlockWords)
	if !strings.Contains(text, `"[\\w']+"`) {
		t.Errorf("word query should carry the word pattern, got %s", text)
	}
	if !strings.Contains(text, ":node/title") {
		t.Error("word query should include page titles")
	}

	ext, _ := MetricQuery(MetricExternalLinks)
	if !strings.Contains(ext, "(not [(clojure.string/includes? ?s \""+FirebaseStorageURL) {
		t.Error("external links should exclude firebase attachments")
	}
}

func TestTagQuery(t *testing.T) {
	tests := []struct {
		tag  TagName
		want string
	}{
		{TagTODO, `[?e :node/title "TODO"]`},
		{TagRoamJS, `[?e :node/title "roam/js"]`},
		{TagName(`say "hi"`), `[?e :node/title "say \"hi\""]`},
		{TagName(`a\b`), `[?e :node/title "a\\b"]`},
	}
	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			if got := TagQuery(tt.tag); !strings.Contains(got, tt.want) {
				t.Errorf("TagQuery(%q) = %s, want it to contain %s", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParseMetricID(t *testing.T) {
	if _, err := ParseMetricID("pages"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseMetricID("Pages"); err == nil {
		t.Error("expected error for wrong case")
	}
	if _, err := ParseTagName("roam/js"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestKey_NamespacesDoNotCollide(t *testing.T) {
	m := MetricKey(MetricID("query"))
	tg := TagKey(TagQueryBlock)
	if m == tg {
		t.Fatal("metric and tag keys with the same spelling must differ")
	}
	if tg.String() != "tag:query" || m.String() != "metric:query" {
		t.Errorf("unexpected strings %q %q", m, tg)
	}
	if m.Valid() {
		t.Error("metric key 'query' is not in the catalog")
	}
	if !tg.Valid() {
		t.Error("tag key 'query' is in the catalog")
	}
	if got := len(AllKeys()); got != 20 {
		t.Errorf("AllKeys() returned %d keys, want 20", got)
	}
}

func TestResults(t *testing.T) {
	r := NewResults()
	if _, ok := r.Metric(MetricPages); ok {
		t.Error("empty results should report absent")
	}
	r.Metrics[MetricPages] = 0
	if v, ok := r.Metric(MetricPages); !ok || v != 0 {
		t.Error("stored zero should be present")
	}
	if r.Complete() {
		t.Error("results should not be complete")
	}
	for _, k := range AllKeys() {
		if k.Kind == KeyTag {
			r.Tags[k.Tag] = 1
		} else {
			r.Metrics[k.Metric] = 1
		}
	}
	if !r.Complete() {
		t.Error("results should be complete")
	}
	c := r.Clone()
	c.Metrics[MetricPages] = 99
	if r.Metrics[MetricPages] == 99 {
		t.Error("Clone should not alias the source maps")
	}
}
