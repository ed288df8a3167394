package getAllBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsLister
type BookingsLister interface {
	Bookings(phone string) ([]models.Booking, error)
}

// New lists all bookings; the optional ?phone= filter backs the
// "track my booking" lookup.
func New(log *slog.Logger, lister BookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log = log.With(slog.String("op", op))

		phone := r.URL.Query().Get("phone")

		bookings, err := lister.Bookings(phone)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))

			return
		}

		log.Info("bookings retrieved", slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
