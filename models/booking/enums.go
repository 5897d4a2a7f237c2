package booking

// TourStatus is the lifecycle state of a tour booking. Transitions only move
// forward through the graph; cancellation is reachable from any non-terminal
// state. Transition authority lies with the operator, not this package.
type TourStatus string

const (
	TourStatusPending   TourStatus = "pending"
	TourStatusConfirmed TourStatus = "confirmed"
	TourStatusCompleted TourStatus = "completed"
	TourStatusCancelled TourStatus = "cancelled"
)

var tourTransitions = map[TourStatus][]TourStatus{
	TourStatusPending:   {TourStatusConfirmed, TourStatusCancelled},
	TourStatusConfirmed: {TourStatusCompleted, TourStatusCancelled},
	TourStatusCompleted: {},
	TourStatusCancelled: {},
}

func (s TourStatus) String() string {
	return string(s)
}

func (s TourStatus) IsValid() bool {
	_, ok := tourTransitions[s]
	return ok
}

// IsTerminal returns true if no further transition is possible.
func (s TourStatus) IsTerminal() bool {
	return s.IsValid() && len(tourTransitions[s]) == 0
}

// CanTransitionTo reports whether next is a legal operator transition from s.
func (s TourStatus) CanTransitionTo(next TourStatus) bool {
	for _, allowed := range tourTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the legal transition set from s.
func (s TourStatus) NextStatuses() []TourStatus {
	return tourTransitions[s]
}

// MedicalStatus is the lifecycle state of a medical booking. The graph is
// applied → confirmed → checkup_done or wellness_done; a booking never jumps
// from applied straight to a done state.
type MedicalStatus string

const (
	MedicalStatusApplied      MedicalStatus = "applied"
	MedicalStatusConfirmed    MedicalStatus = "confirmed"
	MedicalStatusCheckupDone  MedicalStatus = "checkup_done"
	MedicalStatusWellnessDone MedicalStatus = "wellness_done"
	MedicalStatusCancelled    MedicalStatus = "cancelled"
)

var medicalTransitions = map[MedicalStatus][]MedicalStatus{
	MedicalStatusApplied:      {MedicalStatusConfirmed, MedicalStatusCancelled},
	MedicalStatusConfirmed:    {MedicalStatusCheckupDone, MedicalStatusWellnessDone, MedicalStatusCancelled},
	MedicalStatusCheckupDone:  {},
	MedicalStatusWellnessDone: {},
	MedicalStatusCancelled:    {},
}

func (s MedicalStatus) String() string {
	return string(s)
}

func (s MedicalStatus) IsValid() bool {
	_, ok := medicalTransitions[s]
	return ok
}

// IsTerminal returns true if no further transition is possible.
func (s MedicalStatus) IsTerminal() bool {
	return s.IsValid() && len(medicalTransitions[s]) == 0
}

// CanTransitionTo reports whether next is a legal operator transition from s.
func (s MedicalStatus) CanTransitionTo(next MedicalStatus) bool {
	for _, allowed := range medicalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the legal transition set from s.
func (s MedicalStatus) NextStatuses() []MedicalStatus {
	return medicalTransitions[s]
}
