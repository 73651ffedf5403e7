package response

import (
	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomOccupancyResponse struct {
	RoomID            uuid.UUID `json:"roomId"`
	RoomName          string    `json:"roomName"`
	Capacity          int       `json:"capacity"`
	OccupiedBedNights int64     `json:"occupiedBedNights"`
	TotalBedNights    int64     `json:"totalBedNights"`
	OccupancyRate     float64   `json:"occupancyRate"`
}

func FromRoomOccupancies(rows []*queries.RoomOccupancy) []RoomOccupancyResponse {
	result := make([]RoomOccupancyResponse, 0, len(rows))
	for _, row := range rows {
		var r RoomOccupancyResponse
		_ = copier.Copy(&r, row)
		result = append(result, r)
	}
	return result
}
