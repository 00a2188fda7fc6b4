package commands

import (
	"fmt"

	"deliveryfilter/internal/pkg/errs"
)

// Stage is the position of a FilterOrdersCommandHandler run.
//
// Transitions:
//
//	Started ──> Loaded ──> Filtered ──> Completed
//	   │           │           │
//	   └───────────┴───────────┴──────> Stopped
//
// Completed and Stopped are final.
type Stage int

const (
	// Unknown is the zero value and never a valid stage.
	Unknown Stage = iota
	Started
	Loaded
	Filtered
	Completed
	Stopped
)

var stageNames = map[Stage]string{
	Unknown:   "Unknown",
	Started:   "Started",
	Loaded:    "Loaded",
	Filtered:  "Filtered",
	Completed: "Completed",
	Stopped:   "Stopped",
}

var nextStage = map[Stage]Stage{
	Started:  Loaded,
	Loaded:   Filtered,
	Filtered: Completed,
}

// Validate rejects Unknown and values outside the enum.
func (s Stage) Validate() error {
	if _, ok := stageNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Stage) IsFinal() bool {
	return s == Completed || s == Stopped
}

// Next returns the stage that follows s on the happy path.
func (s Stage) Next() (Stage, error) {
	next, ok := nextStage[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s has no next stage", s),
		)
	}
	return next, nil
}

// Stop moves any running stage to Stopped.
func (s Stage) Stop() (Stage, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsFinal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is final and cannot be stopped", s),
		)
	}
	return Stopped, nil
}
