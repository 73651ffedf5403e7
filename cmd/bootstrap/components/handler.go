package components

import (
	"hostel-booking/internal/handler"
	"hostel-booking/internal/handler/api"
	"hostel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewRoomHandler,
		api.NewCartHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewOccupancyHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	availability *api.AvailabilityHandler,
	room *api.RoomHandler,
	cart *api.CartHandler,
	reservation *api.ReservationHandler,
	review *api.ReviewHandler,
	occupancy *api.OccupancyHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Room:         room,
		Cart:         cart,
		Reservation:  reservation,
		Review:       review,
		Occupancy:    occupancy,
	}
}
