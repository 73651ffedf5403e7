package request

type CommitReservationRequest struct {
	AcceptTerms bool `json:"accept_terms"`
}
