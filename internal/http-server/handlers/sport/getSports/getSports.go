package getSports

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"turfBooker/internal/booking"
	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/models"
)

type SportsResponse struct {
	response.Response
	Sports []models.Sport `json:"sports"`
	Slots  []string       `json:"slots"`
}

// New serves the static catalog so the UI never hardcodes prices or slot
// labels.
func New(log *slog.Logger, catalog *booking.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sport.getSports.New"

		log.With(slog.String("op", op)).Info("catalog served")

		render.JSON(w, r, SportsResponse{
			Response: response.OK(),
			Sports:   catalog.Sports(),
			Slots:    catalog.Slots(),
		})
	}
}
