// Package classifier marks imported calendar events as billable work or
// personal time using the user's keyword rules. It is a pure function of
// its inputs; rule storage and calendar fetching live elsewhere.
package classifier

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Confidence constants. Titles matching no rule default to work at
// DefaultConfidence; the import screen pre-selects events at or above
// AutoImportThreshold.
const (
	DefaultConfidence   = 0.5
	AutoImportThreshold = 0.7
)

// Rule is one user-editable keyword rule
type Rule struct {
	Category string `json:"category"` // work/personal
	Keyword  string `json:"keyword"`
	Client   string `json:"client,omitempty"` // suggested client for work rules
}

// Event is an external calendar event as supplied by the calendar collaborator
type Event struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	CalendarID string    `json:"calendar_id"`
}

// Result is the classification of a single event
type Result struct {
	EventID         string  `json:"event_id"`
	Title           string  `json:"title"`
	IsWork          bool    `json:"is_work"`
	Confidence      float64 `json:"confidence"`
	SuggestedClient string  `json:"suggested_client,omitempty"`
	MatchedKeyword  string  `json:"matched_keyword,omitempty"`
	AutoImport      bool    `json:"auto_import"`
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases and strips combining marks (Hebrew niqqud, Latin accents)
// so rule matching is case- and diacritics-insensitive.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Classify scores every event against the rule set. A keyword match wins the
// event for its rule's category; longer, more specific keywords score higher
// than generic ones, and among competing matches the most specific rule wins.
// Unmatched titles default to work at DefaultConfidence.
func Classify(events []Event, rules []Rule) []Result {
	results := make([]Result, 0, len(events))
	for _, ev := range events {
		results = append(results, classifyOne(ev, rules))
	}
	return results
}

func classifyOne(ev Event, rules []Rule) Result {
	title := fold(ev.Title)
	res := Result{EventID: ev.ID, Title: ev.Title, IsWork: true, Confidence: DefaultConfidence}

	best := -1
	bestLen := 0
	for i, r := range rules {
		kw := fold(strings.TrimSpace(r.Keyword))
		if kw == "" || !strings.Contains(title, kw) {
			continue
		}
		if len(kw) > bestLen {
			best = i
			bestLen = len(kw)
		}
	}
	if best >= 0 {
		r := rules[best]
		res.IsWork = r.Category != "personal"
		res.Confidence = matchConfidence(fold(strings.TrimSpace(r.Keyword)), title)
		res.MatchedKeyword = r.Keyword
		if res.IsWork {
			res.SuggestedClient = r.Client
		}
	}
	res.AutoImport = res.IsWork && res.Confidence >= AutoImportThreshold
	return res
}

// matchConfidence grows with how much of the title the keyword explains:
// an exact title match scores 0.95, a short generic keyword inside a long
// title stays near 0.7.
func matchConfidence(keyword, title string) float64 {
	if len(title) == 0 {
		return DefaultConfidence
	}
	ratio := float64(len(keyword)) / float64(len(title))
	if ratio > 1 {
		ratio = 1
	}
	return 0.7 + 0.25*ratio
}

// translationPairs maps rule keywords to their translation in the other
// authoring language. Adding a keyword on one side of the pair also adds the
// other; this is a rule-editor convenience, not part of classification.
var translationPairs = map[string]string{
	"meeting":  "פגישה",
	"client":   "לקוח",
	"lesson":   "שיעור",
	"project":  "פרויקט",
	"invoice":  "חשבונית",
	"workshop": "סדנה",
	"lecture":  "הרצאה",
	"training": "הדרכה",
	"doctor":   "רופא",
	"vacation": "חופשה",
	"birthday": "יום הולדת",
	"gym":      "חדר כושר",
}

// ExpandKeyword returns the keyword plus its paired translation when one
// exists, in both directions.
func ExpandKeyword(keyword string) []string {
	k := strings.TrimSpace(keyword)
	if k == "" {
		return nil
	}
	out := []string{k}
	lower := strings.ToLower(k)
	if t, ok := translationPairs[lower]; ok {
		return append(out, t)
	}
	for en, he := range translationPairs {
		if he == k {
			return append(out, en)
		}
	}
	return out
}
