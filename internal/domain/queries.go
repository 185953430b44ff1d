package domain

import (
	"fmt"
	"strings"
)

const codeFence = "```"

// wordPattern is the Datalog string form of the regex [\w']+
const wordPattern = `[\\w']+`

// FirebaseStorageURL marks attachments hosted by Roam
const FirebaseStorageURL = "https://firebasestorage.googleapis.com"

var notCode = `(not (or [(clojure.string/starts-with? ?s "` + codeFence + `")]
            [(clojure.string/starts-with? ?s "{{")]
            [(clojure.string/starts-with? ?s "<%")]
            [(clojure.string/starts-with? ?s "> ")]
            [(clojure.string/starts-with? ?s "[[>]] ")]
            [(clojure.string/starts-with? ?s ":q ")]))`

var isCode = `(or [(clojure.string/starts-with? ?s "` + codeFence + `")]
       [(clojure.string/starts-with? ?s "{{")]
       [(clojure.string/starts-with? ?s "<%")]
       [(clojure.string/starts-with? ?s ":q ")])`

var isBlockquote = `(or [(clojure.string/starts-with? ?s "[[>]] ")]
       [(clojure.string/starts-with? ?s "> ")])`

func countBlocks(filter string) string {
	return `[:find (count ?s) . :with ?e :where
   [?e :block/string ?s]
   ` + filter + `]`
}

// Word and character sums include page titles alongside matching blocks.
func sumWords(filter string) string {
	return `[:find (sum ?n) :with ?e :where
   (or-join [?s ?e]
     (and [?e :block/string ?s] ` + filter + `)
     [?e :node/title ?s])
   [(re-pattern "` + wordPattern + `") ?pattern]
   [(re-seq ?pattern ?s) ?w]
   [(count ?w) ?n]]`
}

func sumChars(filter string) string {
	return `[:find (sum ?size) . :with ?e :where
   (or-join [?s ?e]
     (and [?e :block/string ?s] ` + filter + `)
     [?e :node/title ?s])
   [(count ?s) ?size]]`
}

var metricQueries = map[MetricID]string{
	MetricPages: `[:find (count ?p) :where [?p :node/title _]]`,

	MetricNonCodeBlocks:     countBlocks(notCode),
	MetricNonCodeBlockWords: sumWords(notCode),
	MetricNonCodeBlockChars: sumChars(notCode),

	MetricBlockquotes:      countBlocks(isBlockquote),
	MetricBlockquotesWords: sumWords(isBlockquote),
	MetricBlockquotesChars: sumChars(isBlockquote),

	MetricCodeBlocks: countBlocks(isCode),
	MetricCodeBlockChars: `[:find (sum ?size) . :with ?e :where
   [?e :block/string ?s]
   ` + isCode + `
   [(count ?s) ?size]]`,

	MetricInterconnections: `[:find (count ?r) . :with ?e :where [?e :block/refs ?r]]`,

	MetricFirebaseLinks: `[:find (count ?e) . :where
   [?e :block/string ?s]
   [(clojure.string/includes? ?s "` + FirebaseStorageURL + `")]]`,

	MetricExternalLinks: `[:find (count ?e) . :where
   [?e :block/string ?s]
   (not [(clojure.string/includes? ?s "` + FirebaseStorageURL + `")])
   (or [(clojure.string/includes? ?s "https://")]
       [(clojure.string/includes? ?s "http://")])]`,
}

// TagQuery returns the query counting blocks that reference the page titled tag
func TagQuery(tag TagName) string {
	return fmt.Sprintf(`[:find (count ?be) . :where [?e :node/title "%s"][?be :block/refs ?e]]`,
		escapeLiteral(string(tag)))
}

// PageUIDQuery looks up the uid of a page by title. The title is bound as
// the first query argument.
const PageUIDQuery = `[:find ?uid . :in $ ?title :where [?e :node/title ?title] [?e :block/uid ?uid]]`

func escapeLiteral(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
