//go:build unit

// Hand-written stubs for the command services. Tests assign the
// function fields they need; unassigned calls fail loudly.
package commandsmock

import (
	"context"
	"time"

	"hostel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CartCommandsStub struct {
	AddToCartFn        func(ctx context.Context, userID, bedID uuid.UUID, checkin, checkout time.Time) (uuid.UUID, error)
	AddPackageToCartFn func(ctx context.Context, userID, packageID uuid.UUID, checkin, checkout time.Time) ([]uuid.UUID, error)
	RemoveFromCartFn   func(ctx context.Context, userID, itemID uuid.UUID) error
	ClearCartFn        func(ctx context.Context, userID uuid.UUID) error
}

var _ commands.CartCommands = (*CartCommandsStub)(nil)

func (s *CartCommandsStub) AddToCart(ctx context.Context, userID, bedID uuid.UUID, checkin, checkout time.Time) (uuid.UUID, error) {
	if s.AddToCartFn == nil {
		panic("CartCommandsStub.AddToCart called without stub")
	}
	return s.AddToCartFn(ctx, userID, bedID, checkin, checkout)
}

func (s *CartCommandsStub) AddPackageToCart(ctx context.Context, userID, packageID uuid.UUID, checkin, checkout time.Time) ([]uuid.UUID, error) {
	if s.AddPackageToCartFn == nil {
		panic("CartCommandsStub.AddPackageToCart called without stub")
	}
	return s.AddPackageToCartFn(ctx, userID, packageID, checkin, checkout)
}

func (s *CartCommandsStub) RemoveFromCart(ctx context.Context, userID, itemID uuid.UUID) error {
	if s.RemoveFromCartFn == nil {
		panic("CartCommandsStub.RemoveFromCart called without stub")
	}
	return s.RemoveFromCartFn(ctx, userID, itemID)
}

func (s *CartCommandsStub) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if s.ClearCartFn == nil {
		panic("CartCommandsStub.ClearCart called without stub")
	}
	return s.ClearCartFn(ctx, userID)
}

type ReservationCommandsStub struct {
	CommitReservationFn   func(ctx context.Context, userID uuid.UUID, acceptedTerms bool) (*commands.CommitResult, error)
	CancelReservationFn   func(ctx context.Context, userID, reservationID uuid.UUID) (*commands.CancelResult, error)
	ConfirmReservationFn  func(ctx context.Context, reservationID uuid.UUID) error
	CheckoutReservationFn func(ctx context.Context, reservationID uuid.UUID) error
}

var _ commands.ReservationCommands = (*ReservationCommandsStub)(nil)

func (s *ReservationCommandsStub) CommitReservation(ctx context.Context, userID uuid.UUID, acceptedTerms bool) (*commands.CommitResult, error) {
	if s.CommitReservationFn == nil {
		panic("ReservationCommandsStub.CommitReservation called without stub")
	}
	return s.CommitReservationFn(ctx, userID, acceptedTerms)
}

func (s *ReservationCommandsStub) CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*commands.CancelResult, error) {
	if s.CancelReservationFn == nil {
		panic("ReservationCommandsStub.CancelReservation called without stub")
	}
	return s.CancelReservationFn(ctx, userID, reservationID)
}

func (s *ReservationCommandsStub) ConfirmReservation(ctx context.Context, reservationID uuid.UUID) error {
	if s.ConfirmReservationFn == nil {
		panic("ReservationCommandsStub.ConfirmReservation called without stub")
	}
	return s.ConfirmReservationFn(ctx, reservationID)
}

func (s *ReservationCommandsStub) CheckoutReservation(ctx context.Context, reservationID uuid.UUID) error {
	if s.CheckoutReservationFn == nil {
		panic("ReservationCommandsStub.CheckoutReservation called without stub")
	}
	return s.CheckoutReservationFn(ctx, reservationID)
}

type ReviewCommandsStub struct {
	CreateReviewFn func(ctx context.Context, userID, reservationID uuid.UUID, rating int, comment string) (uuid.UUID, error)
}

var _ commands.ReviewCommands = (*ReviewCommandsStub)(nil)

func (s *ReviewCommandsStub) CreateReview(ctx context.Context, userID, reservationID uuid.UUID, rating int, comment string) (uuid.UUID, error) {
	if s.CreateReviewFn == nil {
		panic("ReviewCommandsStub.CreateReview called without stub")
	}
	return s.CreateReviewFn(ctx, userID, reservationID, rating, comment)
}
