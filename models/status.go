package models

// Appointment status values are stored in Portuguese, matching what the
// dashboard displays.
const (
	StatusPending   = "pendente"
	StatusConfirmed = "confirmado"
	StatusCompleted = "concluido"
	StatusCancelled = "cancelado"
)

// statusTransitions is the allowed-edge set of the appointment lifecycle.
// concluido and cancelado are terminal.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ValidStatus reports whether s is one of the four known status values.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether an appointment may move from one status to
// another. A same-state update is allowed so repeated updates stay idempotent.
func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
