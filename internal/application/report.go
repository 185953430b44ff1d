package application

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"roamstats/internal/domain"
)

var printer = message.NewPrinter(language.English)

// FormatInt renders n with thousands separators
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// Placeholder is shown for values that have not been loaded
const Placeholder = "…"

// FormatValue renders a loaded value, or the placeholder when absent
func FormatValue(v int64, ok bool) string {
	if !ok {
		return Placeholder
	}
	return FormatInt(v)
}

// Row is one line of the stats panel
type Row struct {
	Label string
	Keys  []domain.Key
}

// Layout groups the catalog into the rows shown by the drawer
func Layout() []Row {
	m := domain.MetricKey
	rows := []Row{
		{Label: "Pages", Keys: []domain.Key{m(domain.MetricPages)}},
		{Label: "Text Blocks / Words / Characters", Keys: []domain.Key{
			m(domain.MetricNonCodeBlocks), m(domain.MetricNonCodeBlockWords), m(domain.MetricNonCodeBlockChars),
		}},
		{Label: "Block Quotes / Words / Characters", Keys: []domain.Key{
			m(domain.MetricBlockquotes), m(domain.MetricBlockquotesWords), m(domain.MetricBlockquotesChars),
		}},
		{Label: "Code Blocks / Characters", Keys: []domain.Key{
			m(domain.MetricCodeBlocks), m(domain.MetricCodeBlockChars),
		}},
		{Label: "Interconnections (refs)", Keys: []domain.Key{m(domain.MetricInterconnections)}},
	}
	for _, tag := range domain.Tags {
		rows = append(rows, Row{Label: string(tag), Keys: []domain.Key{domain.TagKey(tag)}})
	}
	rows = append(rows,
		Row{Label: "Firebase Links", Keys: []domain.Key{m(domain.MetricFirebaseLinks)}},
		Row{Label: "External Links", Keys: []domain.Key{m(domain.MetricExternalLinks)}},
	)
	return rows
}

// FormatRowValues joins the formatted values of a row with " / "
func FormatRowValues(row Row, res domain.Results) string {
	parts := make([]string, len(row.Keys))
	for i, k := range row.Keys {
		parts[i] = FormatValue(res.Get(k))
	}
	return strings.Join(parts, " / ")
}

// FormatReport renders results as plain text, one row per line
func FormatReport(graph string, res domain.Results) string {
	var b strings.Builder
	if graph != "" {
		fmt.Fprintf(&b, "Graph: %s\n", graph)
	}
	for _, row := range Layout() {
		fmt.Fprintf(&b, "%s: %s\n", row.Label, FormatRowValues(row, res))
	}
	return b.String()
}
