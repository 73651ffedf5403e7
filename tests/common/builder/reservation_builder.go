//go:build unit || e2e

package builder

import (
	"time"

	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	id     uuid.UUID
	userID uuid.UUID
	code   string
	status string
	items  []queries.ReservationItemView
}

func NewReservationBuilder() *ReservationBuilder {
	checkin := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		id:     uuid.New(),
		userID: uuid.New(),
		code:   "HB-20261001-A1B2",
		status: "confirmada",
		items: []queries.ReservationItemView{
			{
				ID:          uuid.New(),
				BedID:       uuid.New(),
				RoomName:    "Quarto Azul",
				BedPosition: 1,
				Checkin:     checkin,
				Checkout:    checkin.AddDate(0, 0, 3),
				PriceCents:  7500,
			},
		},
	}
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.id = id
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.userID = id
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.status = status
	return b
}

func (b *ReservationBuilder) BuildView() queries.ReservationView {
	var total int64
	for _, it := range b.items {
		total += it.PriceCents
	}
	now := time.Now()
	return queries.ReservationView{
		ID:         b.id,
		UserID:     b.userID,
		Code:       b.code,
		Status:     b.status,
		TotalCents: total,
		Items:      b.items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *ReservationBuilder) BuildListItem() queries.ReservationListItem {
	view := b.BuildView()
	return queries.ReservationListItem{
		ID:         view.ID,
		Code:       view.Code,
		Status:     view.Status,
		TotalCents: view.TotalCents,
		ItemCount:  int64(len(view.Items)),
		Checkin:    view.Items[0].Checkin,
		Checkout:   view.Items[0].Checkout,
		CreatedAt:  view.CreatedAt,
	}
}
