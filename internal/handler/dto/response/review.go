package response

import (
	"time"

	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	RoomID    uuid.UUID `json:"roomId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatingStatsResponse struct {
	RoomID      uuid.UUID `json:"roomId"`
	AvgRating   *float64  `json:"avgRating,omitempty"`
	ReviewCount int64     `json:"reviewCount"`
}

func FromReviewViews(views []*queries.ReviewView) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(views))
	for _, view := range views {
		var r ReviewResponse
		_ = copier.Copy(&r, view)
		result = append(result, r)
	}
	return result
}

func FromRatingStats(stats *queries.RoomRatingStats) *RatingStatsResponse {
	resp := &RatingStatsResponse{}
	_ = copier.Copy(resp, stats)
	return resp
}
