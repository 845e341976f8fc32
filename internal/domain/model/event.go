// Package model contains domain models passed between layers.
package model

// Event represents one keystroke/edit action from a raw input log.
// Fields mirror the columns of the event table.
type Event struct {
	ID         string  // entity identifier; many events share one id
	ActionTime float64 // elapsed time of the action, non-negative
	Activity   string  // raw edit-action label, e.g. "Input", "Move From [1] To [2]"
	TextChange string  // raw text-change code, e.g. "q", "\n"
}

// Label carries the external training target for one entity.
type Label struct {
	ID    string
	Score float64
}
