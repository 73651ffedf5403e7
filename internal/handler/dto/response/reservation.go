package response

import (
	"time"

	"hostel-booking/internal/usecase/commands"
	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	BedID       uuid.UUID  `json:"bedId"`
	RoomName    string     `json:"roomName"`
	BedPosition int        `json:"bedPosition"`
	Checkin     time.Time  `json:"checkin"`
	Checkout    time.Time  `json:"checkout"`
	PriceCents  int64      `json:"priceCents"`
	PackageID   *uuid.UUID `json:"packageId,omitempty"`
}

type ReservationResponse struct {
	ID         uuid.UUID                 `json:"id"`
	UserID     uuid.UUID                 `json:"userId"`
	Code       string                    `json:"code"`
	Status     string                    `json:"status"`
	TotalCents int64                     `json:"totalCents"`
	Items      []ReservationItemResponse `json:"items"`
	CreatedAt  time.Time                 `json:"createdAt"`
	UpdatedAt  time.Time                 `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	ItemCount  int64     `json:"itemCount"`
	Checkin    time.Time `json:"checkin"`
	Checkout   time.Time `json:"checkout"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CommitReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
}

type CancelReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	FeeCents    int64     `json:"feeCents"`
	RefundCents int64     `json:"refundCents"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	resp := &ReservationResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromReservationListItem(item *queries.ReservationListItem) *ReservationListResponse {
	resp := &ReservationListResponse{}
	_ = copier.Copy(resp, item)
	return resp
}

func FromCommitResult(result *commands.CommitResult) *CommitReservationResponse {
	return &CommitReservationResponse{
		ID:         result.ReservationID,
		Code:       result.Code,
		Status:     result.Status,
		TotalCents: result.TotalCents,
	}
}

func FromCancelResult(result *commands.CancelResult) *CancelReservationResponse {
	return &CancelReservationResponse{
		ID:          result.ReservationID,
		FeeCents:    result.FeeCents,
		RefundCents: result.RefundCents,
	}
}
