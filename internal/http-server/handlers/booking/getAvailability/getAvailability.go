package getAvailability

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"turfBooker/internal/booking"
	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
)

type AvailabilityResponse struct {
	response.Response
	Sport string               `json:"sport"`
	Date  string               `json:"date"`
	Slots []booking.SlotStatus `json:"slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotStatusProvider
type SlotStatusProvider interface {
	SlotStatus(sport, date string) ([]booking.SlotStatus, error)
}

func New(log *slog.Logger, provider SlotStatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAvailability.New"

		log = log.With(slog.String("op", op))

		sport := r.URL.Query().Get("sport")
		date := r.URL.Query().Get("date")

		if sport == "" || date == "" {
			log.Error("sport and date are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("sport and date are required"))

			return
		}

		if _, err := models.ParseDate(date); err != nil {
			log.Error("invalid date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format"))

			return
		}

		slots, err := provider.SlotStatus(sport, date)
		if err != nil {
			log.Error("failed to get slot status", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrUnknownSport):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown sport"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get slot status"))
			}

			return
		}

		log.Info("slot status computed",
			slog.String("sport", sport),
			slog.String("date", date),
			slog.Int("slots", len(slots)),
		)

		render.JSON(w, r, AvailabilityResponse{
			Response: response.OK(),
			Sport:    sport,
			Date:     date,
			Slots:    slots,
		})
	}
}
