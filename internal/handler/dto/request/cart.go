package request

import (
	"time"

	"github.com/google/uuid"
)

// Dates arrive as "2006-01-02" strings and are parsed to UTC midnight.
type AddCartItemRequest struct {
	BedID    uuid.UUID `json:"bed_id" binding:"required"`
	Checkin  string    `json:"checkin" binding:"required,datetime=2006-01-02"`
	Checkout string    `json:"checkout" binding:"required,datetime=2006-01-02"`
}

type AddCartPackageRequest struct {
	PackageID uuid.UUID `json:"package_id" binding:"required"`
	Checkin   string    `json:"checkin" binding:"required,datetime=2006-01-02"`
	Checkout  string    `json:"checkout" binding:"required,datetime=2006-01-02"`
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func (r AddCartItemRequest) Dates() (checkin, checkout time.Time, err error) {
	if checkin, err = ParseDate(r.Checkin); err != nil {
		return
	}
	checkout, err = ParseDate(r.Checkout)
	return
}

func (r AddCartPackageRequest) Dates() (checkin, checkout time.Time, err error) {
	if checkin, err = ParseDate(r.Checkin); err != nil {
		return
	}
	checkout, err = ParseDate(r.Checkout)
	return
}
