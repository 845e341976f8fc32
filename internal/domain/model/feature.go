package model

import "github.com/okian/keyfeat/internal/domain/vocab"

// Timing column names, in output order.
const (
	ColID                = "id"
	ColActionTimeMaxLog  = "action_time_max_log"
	ColActionTimeMeanLog = "action_time_mean_log"
	ColActionTimeStdLog  = "action_time_std_log"
	ColScore             = "score"
)

// FeatureVector is one fixed-schema feature row for a single entity.
// Frequency slices are in vocabulary order and sum to 1 for a non-empty group.
type FeatureVector struct {
	ID                string
	ActionTimeMaxLog  float64
	ActionTimeMeanLog float64
	ActionTimeStdLog  float64
	ActivityFreq      []float64 // one entry per vocab.ActivityNames()
	TextChangeFreq    []float64 // one entry per vocab.TextChangeNames()
	Label             *float64  // nil when no label matched (or none supplied)
}

// FeatureTable holds one FeatureVector per distinct entity id, sorted by id.
type FeatureTable struct {
	Rows    []FeatureVector
	Labeled bool // true when a label table was joined
}

// Header returns the output column names in their fixed order.
func Header(labeled bool) []string {
	cols := []string{ColID, ColActionTimeMaxLog, ColActionTimeMeanLog, ColActionTimeStdLog}
	cols = append(cols, vocab.ActivityNames()...)
	cols = append(cols, vocab.TextChangeNames()...)
	if labeled {
		cols = append(cols, ColScore)
	}
	return cols
}
