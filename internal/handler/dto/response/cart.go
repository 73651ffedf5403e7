package response

import (
	"time"

	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CartItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	BedID           uuid.UUID  `json:"bedId"`
	RoomID          uuid.UUID  `json:"roomId"`
	RoomName        string     `json:"roomName"`
	BedPosition     int        `json:"bedPosition"`
	Checkin         time.Time  `json:"checkin"`
	Checkout        time.Time  `json:"checkout"`
	Nights          int        `json:"nights"`
	PackageID       *uuid.UUID `json:"packageId,omitempty"`
	TotalPriceCents int64      `json:"totalPriceCents"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"totalCents"`
}

func FromCartSummary(summary *queries.CartSummary) *CartResponse {
	resp := &CartResponse{
		Items:      make([]CartItemResponse, 0, len(summary.Items)),
		TotalCents: summary.TotalCents,
	}
	for _, item := range summary.Items {
		var r CartItemResponse
		_ = copier.Copy(&r, item)
		resp.Items = append(resp.Items, r)
	}
	return resp
}

type CartItemCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type CartPackageCreatedResponse struct {
	ItemIDs []uuid.UUID `json:"itemIds"`
}
