package reservation

// Status follows the lifecycle the back office works with; values are
// kept in Portuguese to match the persisted data.
type Status string

const (
	StatusPendente   Status = "pendente"
	StatusConfirmada Status = "confirmada"
	StatusCancelada  Status = "cancelada"
	StatusCheckout   Status = "checkout"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendente, StatusConfirmada, StatusCancelada, StatusCheckout:
		return true
	default:
		return false
	}
}

// Holds reports whether the status still blocks the underlying bed
// ranges from other claims.
func (s Status) Holds() bool {
	return s == StatusPendente || s == StatusConfirmada
}

// Cancellable reports whether the status may transition to cancelada.
func (s Status) Cancellable() bool {
	return s == StatusPendente || s == StatusConfirmada
}

// Reviewable reservations have completed their stay.
func (s Status) Reviewable() bool {
	return s == StatusCheckout
}
