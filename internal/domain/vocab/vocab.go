// Package vocab defines the closed categorical vocabularies and the
// bucketing rules that map raw event values onto them.
//
// Vocabularies are invariant configuration: fixed names in a fixed order,
// with name->index maps built once at process start. Any value a bucketing
// rule cannot place is a validation error, never a silent drop and never a
// schema extension.
package vocab

import "strings"

// activityNames is the closed activity vocabulary, in output column order.
var activityNames = []string{
	"nonproduction",
	"input",
	"remove/cut",
	"paste",
	"replace",
	"move",
}

// textChangeNames is the closed text-change vocabulary, in output column order.
var textChangeNames = []string{
	"alphanum",
	"other",
}

var (
	activityIndex   = buildIndex(activityNames)
	textChangeIndex = buildIndex(textChangeNames)
)

func buildIndex(names []string) map[string]int {
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}
	return idx
}

// ActivityNames returns the activity vocabulary in order.
// Callers must not modify the returned slice.
func ActivityNames() []string { return activityNames }

// TextChangeNames returns the text-change vocabulary in order.
// Callers must not modify the returned slice.
func TextChangeNames() []string { return textChangeNames }

// ActivityIndex returns the position of name in the activity vocabulary.
func ActivityIndex(name string) (int, bool) {
	i, ok := activityIndex[name]
	return i, ok
}

// TextChangeIndex returns the position of name in the text-change vocabulary.
func TextChangeIndex(name string) (int, bool) {
	i, ok := textChangeIndex[name]
	return i, ok
}

// BucketActivity maps a raw activity value onto the activity vocabulary.
// Cursor and text moves are logged as free text like "Move From [5, 9] To
// [14, 18]", so any raw value containing "Move" (case-sensitive, checked
// before lower-casing) buckets to "move". Every other value must lower-case
// to one of the vocabulary names; anything else is ErrUnknownActivity.
func BucketActivity(raw string) (string, error) {
	if strings.Contains(raw, "Move") {
		return "move", nil
	}
	name := strings.ToLower(raw)
	if _, ok := activityIndex[name]; !ok {
		return "", wrapUnknownActivity(raw)
	}
	return name, nil
}

// BucketTextChange maps a raw text-change value onto the text-change
// vocabulary. The logs anonymize alphanumeric edits as the literal "q";
// everything else (whitespace, punctuation, multi-char diffs) is "other".
// The rule is total and never fails.
func BucketTextChange(raw string) (string, error) {
	if raw == "q" {
		return "alphanum", nil
	}
	return "other", nil
}
