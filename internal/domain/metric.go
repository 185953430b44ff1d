package domain

import "fmt"

// MetricID identifies one count shown in the stats drawer
type MetricID string

const (
	MetricPages             MetricID = "pages"
	MetricNonCodeBlocks     MetricID = "nonCodeBlocks"
	MetricNonCodeBlockWords MetricID = "nonCodeBlockWords"
	MetricNonCodeBlockChars MetricID = "nonCodeBlockChars"
	MetricBlockquotes       MetricID = "blockquotes"
	MetricBlockquotesWords  MetricID = "blockquotesWords"
	MetricBlockquotesChars  MetricID = "blockquotesChars"
	MetricCodeBlocks        MetricID = "codeBlocks"
	MetricCodeBlockChars    MetricID = "codeBlockChars"
	MetricInterconnections  MetricID = "interconnections"
	MetricFirebaseLinks     MetricID = "firebaseLinks"
	MetricExternalLinks     MetricID = "externalLinks"
)

// Metrics is the metric catalog in display order
var Metrics = []MetricID{
	MetricPages,
	MetricNonCodeBlocks,
	MetricNonCodeBlockWords,
	MetricNonCodeBlockChars,
	MetricBlockquotes,
	MetricBlockquotesWords,
	MetricBlockquotesChars,
	MetricCodeBlocks,
	MetricCodeBlockChars,
	MetricInterconnections,
	MetricFirebaseLinks,
	MetricExternalLinks,
}

var metricLabels = map[MetricID]string{
	MetricPages:             "Pages",
	MetricNonCodeBlocks:     "Text Blocks",
	MetricNonCodeBlockWords: "Text Words",
	MetricNonCodeBlockChars: "Text Characters",
	MetricBlockquotes:       "Block Quotes",
	MetricBlockquotesWords:  "Block Quote Words",
	MetricBlockquotesChars:  "Block Quote Characters",
	MetricCodeBlocks:        "Code Blocks",
	MetricCodeBlockChars:    "Code Characters",
	MetricInterconnections:  "Interconnections (refs)",
	MetricFirebaseLinks:     "Firebase Links",
	MetricExternalLinks:     "External Links",
}

// Label returns the human readable name of the metric
func (id MetricID) Label() string {
	if l, ok := metricLabels[id]; ok {
		return l
	}
	return string(id)
}

// Valid reports whether id is part of the catalog
func (id MetricID) Valid() bool {
	_, ok := metricQueries[id]
	return ok
}

// ParseMetricID validates a metric identifier typed by a user
func ParseMetricID(s string) (MetricID, error) {
	id := MetricID(s)
	if !id.Valid() {
		return "", fmt.Errorf("unknown metric %q", s)
	}
	return id, nil
}

// MetricQuery returns the query descriptor backing a metric
func MetricQuery(id MetricID) (string, bool) {
	q, ok := metricQueries[id]
	return q, ok
}

// TagName is one of the block-type markers counted by reference
type TagName string

const (
	TagTODO       TagName = "TODO"
	TagDONE       TagName = "DONE"
	TagQueryBlock TagName = "query"
	TagEmbed      TagName = "embed"
	TagTable      TagName = "table"
	TagKanban     TagName = "kanban"
	TagVideo      TagName = "video"
	TagRoamJS     TagName = "roam/js"
)

// Tags is the tag catalog in display order
var Tags = []TagName{
	TagTODO,
	TagDONE,
	TagQueryBlock,
	TagEmbed,
	TagTable,
	TagKanban,
	TagVideo,
	TagRoamJS,
}

// Valid reports whether tag is part of the catalog
func (t TagName) Valid() bool {
	for _, tag := range Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// ParseTagName validates a tag typed by a user
func ParseTagName(s string) (TagName, error) {
	t := TagName(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown tag %q", s)
	}
	return t, nil
}
