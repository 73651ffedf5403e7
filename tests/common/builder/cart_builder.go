//go:build unit || e2e

package builder

import (
	"time"

	"hostel-booking/internal/handler/dto/request"
	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartItemBuilder struct {
	bedID    uuid.UUID
	checkin  string
	checkout string
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		bedID:    uuid.New(),
		checkin:  "2026-10-01",
		checkout: "2026-10-04",
	}
}

func (b *CartItemBuilder) WithBedID(id uuid.UUID) *CartItemBuilder {
	b.bedID = id
	return b
}

func (b *CartItemBuilder) WithStay(checkin, checkout string) *CartItemBuilder {
	b.checkin = checkin
	b.checkout = checkout
	return b
}

func (b *CartItemBuilder) BuildAddItemRequest() request.AddCartItemRequest {
	return request.AddCartItemRequest{
		BedID:    b.bedID,
		Checkin:  b.checkin,
		Checkout: b.checkout,
	}
}

func (b *CartItemBuilder) BuildItemView() queries.CartItemView {
	checkin, _ := time.Parse("2006-01-02", b.checkin)
	checkout, _ := time.Parse("2006-01-02", b.checkout)
	nights := int(checkout.Sub(checkin).Hours() / 24)
	return queries.CartItemView{
		ID:              uuid.New(),
		BedID:           b.bedID,
		RoomID:          uuid.New(),
		RoomName:        "Quarto Azul",
		BedPosition:     1,
		Checkin:         checkin,
		Checkout:        checkout,
		Nights:          nights,
		TotalPriceCents: int64(nights) * 2500,
		CreatedAt:       time.Now(),
	}
}

type CartPackageBuilder struct {
	packageID uuid.UUID
	checkin   string
	checkout  string
}

func NewCartPackageBuilder() *CartPackageBuilder {
	return &CartPackageBuilder{
		packageID: uuid.New(),
		checkin:   "2026-12-28",
		checkout:  "2027-01-02",
	}
}

func (b *CartPackageBuilder) WithPackageID(id uuid.UUID) *CartPackageBuilder {
	b.packageID = id
	return b
}

func (b *CartPackageBuilder) WithStay(checkin, checkout string) *CartPackageBuilder {
	b.checkin = checkin
	b.checkout = checkout
	return b
}

func (b *CartPackageBuilder) BuildAddPackageRequest() request.AddCartPackageRequest {
	return request.AddCartPackageRequest{
		PackageID: b.packageID,
		Checkin:   b.checkin,
		Checkout:  b.checkout,
	}
}
