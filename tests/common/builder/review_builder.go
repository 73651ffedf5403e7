//go:build unit || e2e

package builder

import (
	"time"

	"hostel-booking/internal/handler/dto/request"
	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	reservationID uuid.UUID
	roomID        uuid.UUID
	rating        int
	comment       string
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		reservationID: uuid.New(),
		roomID:        uuid.New(),
		rating:        4,
		comment:       "Clean room, friendly staff.",
	}
}

func (b *ReviewBuilder) WithReservationID(id uuid.UUID) *ReviewBuilder {
	b.reservationID = id
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.comment = comment
	return b
}

func (b *ReviewBuilder) BuildCreateRequest() request.CreateReviewRequest {
	return request.CreateReviewRequest{
		ReservationID: b.reservationID,
		Rating:        b.rating,
		Comment:       b.comment,
	}
}

func (b *ReviewBuilder) BuildView() queries.ReviewView {
	return queries.ReviewView{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		RoomID:    b.roomID,
		Rating:    b.rating,
		Comment:   b.comment,
		CreatedAt: time.Now(),
	}
}
