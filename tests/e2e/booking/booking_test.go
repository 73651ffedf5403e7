//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"hostel-booking/internal/domain/stay"
	"hostel-booking/internal/handler/dto/request"
	"hostel-booking/tests/common/authtest"
	"hostel-booking/tests/common/dbtest"
	"hostel-booking/tests/common/httptest"
	"hostel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	availabilityURL = "/api/availability"
	cartURL         = "/api/cart"
	cartItemsURL    = "/api/cart/items"
	reservationsURL = "/api/reservations"
	reviewsURL      = "/api/reviews"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) stayDates(daysAhead, nights int) (string, string) {
	checkin := time.Now().UTC().AddDate(0, 0, daysAhead)
	checkout := checkin.AddDate(0, 0, nights)
	return checkin.Format(stay.DateFormat), checkout.Format(stay.DateFormat)
}

// =============================================================================
// Full booking flow: search, hold, commit, verify
// =============================================================================

func (s *BookingSuite) TestBookingFlow() {
	s.Run("search, hold a bed, commit, and read the reservation back", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Azul", 4, 10000)
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID, "guest")
		checkin, checkout := s.stayDates(30, 3)

		// Search shows the room with every bed free.
		searchURL := fmt.Sprintf("%s?checkin=%s&checkout=%s", availabilityURL, checkin, checkout)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, searchURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var rooms []struct {
			RoomID        uuid.UUID `json:"roomId"`
			AvailableBeds []struct {
				ID uuid.UUID `json:"id"`
			} `json:"availableBeds"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 1)
		require.Len(t, rooms[0].AvailableBeds, 4)

		// Hold one bed.
		addReq := request.AddCartItemRequest{BedID: room.BedIDs[0], Checkin: checkin, Checkout: checkout}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addReq, token)
		require.Equal(t, http.StatusCreated, w.Code, "add to cart failed: %s", w.Body.String())

		// The cart shows the item priced at base/capacity per night.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var cart struct {
			Items      []map[string]any `json:"items"`
			TotalCents int64            `json:"totalCents"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		require.Len(t, cart.Items, 1)
		require.Equal(t, int64(7500), cart.TotalCents) // 2500/night * 3 nights

		// Another guest can no longer hold the same bed.
		otherToken := s.jwt.GenerateToken(t, uuid.New(), "guest")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addReq, otherToken)
		require.Equal(t, http.StatusConflict, w.Code)

		// Commit the cart.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CommitReservationRequest{AcceptTerms: true}, token)
		require.Equal(t, http.StatusCreated, w.Code, "commit failed: %s", w.Body.String())

		var committed struct {
			ID         uuid.UUID `json:"id"`
			Code       string    `json:"code"`
			Status     string    `json:"status"`
			TotalCents int64     `json:"totalCents"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &committed))
		require.Equal(t, "pendente", committed.Status)
		require.Equal(t, int64(7500), committed.TotalCents)
		require.NotEmpty(t, committed.Code)

		// The cart is drained.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		require.Empty(t, cart.Items)

		// The reservation is readable by its owner only.
		detailURL := reservationsURL + "/" + committed.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		// The bed stays blocked for the committed range.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, searchURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 1)
		require.Len(t, rooms[0].AvailableBeds, 3)
	})

	s.Run("commit with an empty cart fails", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), "guest")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CommitReservationRequest{AcceptTerms: true}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("commit without accepting terms fails", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Verde", 2, 8000)
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID, "guest")
		checkin, checkout := s.stayDates(10, 2)

		addReq := request.AddCartItemRequest{BedID: room.BedIDs[0], Checkin: checkin, Checkout: checkout}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartItemsURL, addReq, token)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CommitReservationRequest{AcceptTerms: false}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		// The hold survives a failed commit.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var cart struct {
			Items []map[string]any `json:"items"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		require.Len(t, cart.Items, 1)
	})
}

// =============================================================================
// Concurrent commits over the same bed
// =============================================================================

func (s *BookingSuite) TestConcurrentCommit() {
	s.Run("two carts holding the same bed: exactly one commit wins", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Disputado", 2, 10000)
		checkin := time.Now().UTC().AddDate(0, 0, 20)
		checkout := checkin.AddDate(0, 0, 2)

		userA := uuid.New()
		userB := uuid.New()
		// Stage the race directly: both carts hold the same bed, which
		// the API would normally prevent but a true race would not.
		dbtest.CreateCartHold(t, s.DB, userA, room.BedIDs[0], checkin, checkout)
		dbtest.CreateCartHold(t, s.DB, userB, room.BedIDs[0], checkin, checkout)

		tokens := []string{
			s.jwt.GenerateToken(t, userA, "guest"),
			s.jwt.GenerateToken(t, userB, "guest"),
		}

		codes := make([]int, len(tokens))
		var wg sync.WaitGroup
		for i, token := range tokens {
			wg.Add(1)
			go func(i int, token string) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
					request.CommitReservationRequest{AcceptTerms: true}, token)
				codes[i] = w.Code
			}(i, token)
		}
		wg.Wait()

		created := 0
		conflicted := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "exactly one commit must win, got codes %v", codes)
		require.Equal(t, 1, conflicted, "the loser must see a conflict, got codes %v", codes)
	})
}

// =============================================================================
// Cancellation fees
// =============================================================================

func (s *BookingSuite) TestCancellation() {
	s.Run("cancelling five days ahead pays the outer bracket fee", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Amarelo", 2, 10000)
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID, "guest")

		checkin := time.Now().UTC().AddDate(0, 0, 5)
		reservationID := dbtest.CreateReservation(t, s.DB, userID, "confirmada",
			room.BedIDs[:1], checkin, checkin.AddDate(0, 0, 2), 10000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, w.Code, "cancel failed: %s", w.Body.String())

		var result struct {
			FeeCents    int64 `json:"feeCents"`
			RefundCents int64 `json:"refundCents"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.Equal(t, int64(2000), result.FeeCents)
		require.Equal(t, int64(8000), result.RefundCents)

		// A second cancel is rejected.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("cancelling someone else's reservation is forbidden", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Roxo", 2, 10000)
		owner := uuid.New()
		checkin := time.Now().UTC().AddDate(0, 0, 15)
		reservationID := dbtest.CreateReservation(t, s.DB, owner, "confirmada",
			room.BedIDs[:1], checkin, checkin.AddDate(0, 0, 2), 10000)

		intruderToken := s.jwt.GenerateToken(t, uuid.New(), "guest")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/cancel", nil, intruderToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// Reviews after checkout
// =============================================================================

func (s *BookingSuite) TestReviews() {
	s.Run("a completed stay can be reviewed exactly once", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Branco", 2, 10000)
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID, "guest")

		past := time.Now().UTC().AddDate(0, 0, -10)
		reservationID := dbtest.CreateReservation(t, s.DB, userID, "checkout",
			room.BedIDs[:1], past, past.AddDate(0, 0, 3), 7500)

		reqBody := request.CreateReviewRequest{ReservationID: reservationID, Rating: 5, Comment: "Spotless room"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "review failed: %s", w.Body.String())

		// Ratings surface on the room.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/rooms/"+room.ID.String()+"/rating-stats", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var stats struct {
			AvgRating   *float64 `json:"avgRating"`
			ReviewCount int64    `json:"reviewCount"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stats))
		require.NotNil(t, stats.AvgRating)
		require.InDelta(t, 5.0, *stats.AvgRating, 0.001)
		require.Equal(t, int64(1), stats.ReviewCount)

		// Second review for the same reservation is rejected.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("a stay that has not checked out cannot be reviewed", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Preto", 2, 10000)
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID, "guest")

		checkin := time.Now().UTC().AddDate(0, 0, 5)
		reservationID := dbtest.CreateReservation(t, s.DB, userID, "confirmada",
			room.BedIDs[:1], checkin, checkin.AddDate(0, 0, 2), 10000)

		reqBody := request.CreateReviewRequest{ReservationID: reservationID, Rating: 4, Comment: "too early"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

// =============================================================================
// Occupancy report access
// =============================================================================

func (s *BookingSuite) TestOccupancyReport() {
	s.Run("staff sees per-room occupancy; guests are refused", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Cinza", 2, 10000)
		from := time.Now().UTC().AddDate(0, 0, 10)
		to := from.AddDate(0, 0, 10)
		dbtest.CreateReservation(t, s.DB, uuid.New(), "confirmada",
			room.BedIDs[:1], from, from.AddDate(0, 0, 5), 10000)

		url := fmt.Sprintf("/api/admin/occupancy?from=%s&to=%s",
			from.Format(stay.DateFormat), to.Format(stay.DateFormat))

		staffToken := s.jwt.GenerateToken(t, uuid.New(), "staff")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, "occupancy failed: %s", w.Body.String())

		var report []struct {
			RoomID            uuid.UUID `json:"roomId"`
			OccupiedBedNights int64     `json:"occupiedBedNights"`
			TotalBedNights    int64     `json:"totalBedNights"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &report))
		require.Len(t, report, 1)
		require.Equal(t, int64(5), report[0].OccupiedBedNights)
		require.Equal(t, int64(20), report[0].TotalBedNights) // 2 beds * 10 nights

		guestToken := s.jwt.GenerateToken(t, uuid.New(), "guest")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, guestToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Package availability
// =============================================================================

func (s *BookingSuite) TestPackageAvailability() {
	s.Run("packages on a bedless room are never offered", func() {
		t := s.T()
		ctx := context.Background()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Laranja", 2, 10000)
		checkin := time.Now().UTC().AddDate(0, 0, 10)
		checkout := checkin.AddDate(0, 0, 2)
		dbtest.CreatePackage(t, s.DB, room.ID, "Pacote Laranja", checkin, checkout, 50000, true)

		// A room row with no bed rows, holding a package for the same range.
		var bedlessID uuid.UUID
		err := s.DB.QueryRow(ctx,
			`INSERT INTO rooms (name, capacity, base_price_cents) VALUES ('Quarto Vazio', 2, 10000) RETURNING id`,
		).Scan(&bedlessID)
		require.NoError(t, err)
		dbtest.CreatePackage(t, s.DB, bedlessID, "Pacote Fantasma", checkin, checkout, 50000, true)

		searchURL := fmt.Sprintf("%s?checkin=%s&checkout=%s",
			availabilityURL, checkin.Format(stay.DateFormat), checkout.Format(stay.DateFormat))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, searchURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var rooms []struct {
			RoomID            uuid.UUID `json:"roomId"`
			AvailablePackages []struct {
				Name string `json:"name"`
			} `json:"availablePackages"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 1, "only the room with beds should be listed")
		require.Equal(t, room.ID, rooms[0].RoomID)
		require.Len(t, rooms[0].AvailablePackages, 1)
		require.Equal(t, "Pacote Laranja", rooms[0].AvailablePackages[0].Name)
	})
}

// =============================================================================
// Front-desk status transitions
// =============================================================================

func (s *BookingSuite) TestStatusTransitions() {
	s.Run("confirm then checkout unlocks reviewing", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Verde", 2, 10000)
		userID := uuid.New()
		guestToken := s.jwt.GenerateToken(t, userID, "guest")
		staffToken := s.jwt.GenerateToken(t, uuid.New(), "staff")

		checkin := time.Now().UTC().AddDate(0, 0, 3)
		reservationID := dbtest.CreateReservation(t, s.DB, userID, "pendente",
			room.BedIDs[:1], checkin, checkin.AddDate(0, 0, 2), 10000)
		base := "/api/admin/reservations/" + reservationID.String()

		// Pendente stays are not reviewable.
		reqBody := request.CreateReviewRequest{ReservationID: reservationID, Rating: 5, Comment: "great stay"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, guestToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		// Checkout before confirmation is out of order.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/checkout", nil, staffToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/confirm", nil, staffToken)
		require.Equal(t, http.StatusNoContent, w.Code, "confirm failed: %s", w.Body.String())

		// Confirming twice is rejected.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/confirm", nil, staffToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/checkout", nil, staffToken)
		require.Equal(t, http.StatusNoContent, w.Code, "checkout failed: %s", w.Body.String())

		// After checkout the guest can review.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, guestToken)
		require.Equal(t, http.StatusCreated, w.Code, "review failed: %s", w.Body.String())
	})

	s.Run("guests cannot drive transitions", func() {
		t := s.T()

		room := dbtest.CreateRoom(t, s.DB, "Quarto Roxo", 2, 10000)
		userID := uuid.New()
		guestToken := s.jwt.GenerateToken(t, userID, "guest")

		checkin := time.Now().UTC().AddDate(0, 0, 3)
		reservationID := dbtest.CreateReservation(t, s.DB, userID, "pendente",
			room.BedIDs[:1], checkin, checkin.AddDate(0, 0, 2), 10000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/reservations/"+reservationID.String()+"/confirm", nil, guestToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}
