package model

import "github.com/TeriyakiSecky/android-sdk/internal/scope"

// Issue identifies a single kind of problem a detector can report. Several
// issues may be bound to one detector kind; the detector instance is shared
// between them.
type Issue struct {
	ID          string
	Description string
	Category    string
	Priority    int
	Severity    Severity
	Scope       scope.Set
	// Detector is the kind of the detector implementing this issue; the
	// registry resolves it to a concrete instance.
	Detector string
}

func NewIssue(id, description, category string, priority int, severity Severity, sc scope.Set, detector string) *Issue {
	return &Issue{
		ID:          id,
		Description: description,
		Category:    category,
		Priority:    priority,
		Severity:    severity,
		Scope:       sc,
		Detector:    detector,
	}
}

func (i *Issue) String() string { return i.ID }
