package response

import (
	"time"

	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BedResponse struct {
	ID                uuid.UUID `json:"id"`
	RoomID            uuid.UUID `json:"roomId"`
	BedType           string    `json:"bedType"`
	Position          int       `json:"position"`
	NightlyPriceCents int64     `json:"nightlyPriceCents"`
}

type PackageResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"roomId"`
	Name            string    `json:"name"`
	Checkin         time.Time `json:"checkin"`
	Checkout        time.Time `json:"checkout"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CloseWholeRoom  bool      `json:"closeWholeRoom"`
}

type RoomListResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Capacity       int       `json:"capacity"`
	BasePriceCents int64     `json:"basePriceCents"`
	AvgRating      *float64  `json:"avgRating,omitempty"`
	ReviewCount    int64     `json:"reviewCount"`
}

type RoomResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Capacity       int               `json:"capacity"`
	BasePriceCents int64             `json:"basePriceCents"`
	Active         bool              `json:"active"`
	Beds           []BedResponse     `json:"beds"`
	Packages       []PackageResponse `json:"packages"`
}

type RoomAvailabilityResponse struct {
	RoomID            uuid.UUID         `json:"roomId"`
	RoomName          string            `json:"roomName"`
	Capacity          int               `json:"capacity"`
	AvailableBeds     []BedResponse     `json:"availableBeds"`
	AvailablePackages []PackageResponse `json:"availablePackages,omitempty"`
}

func FromRoomListItems(items []*queries.RoomListItem) []RoomListResponse {
	result := make([]RoomListResponse, 0, len(items))
	for _, item := range items {
		var r RoomListResponse
		_ = copier.Copy(&r, item)
		result = append(result, r)
	}
	return result
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	resp := &RoomResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromRoomAvailability(views []*queries.RoomAvailabilityView) []RoomAvailabilityResponse {
	result := make([]RoomAvailabilityResponse, 0, len(views))
	for _, view := range views {
		var r RoomAvailabilityResponse
		_ = copier.Copy(&r, view)
		if r.AvailableBeds == nil {
			r.AvailableBeds = []BedResponse{}
		}
		result = append(result, r)
	}
	return result
}
