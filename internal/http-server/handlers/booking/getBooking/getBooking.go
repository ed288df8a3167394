package getBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"turfBooker/internal/booking"
	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
)

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	BookingByID(id string) (models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))

			return
		}

		b, err := getter.BookingByID(id)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			if errors.Is(err, booking.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))

			return
		}

		log.Info("booking retrieved", slog.String("id", b.ID))

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
