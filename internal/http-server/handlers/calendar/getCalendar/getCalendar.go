package getCalendar

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"turfBooker/internal/calendar"
	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
)

const monthLayout = "2006-01"

type CalendarResponse struct {
	response.Response
	Month string         `json:"month"`
	Days  []calendar.Day `json:"days"`
}

// New renders the month grid for the booking calendar. The month defaults
// to the current one and ?selected= marks the active day. The clock is
// injected so the grid flags stay deterministic under test.
func New(log *slog.Logger, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calendar.getCalendar.New"

		log = log.With(slog.String("op", op))

		current := now()
		month := current

		if raw := r.URL.Query().Get("month"); raw != "" {
			parsed, err := time.Parse(monthLayout, raw)
			if err != nil {
				log.Error("invalid month format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid month format"))

				return
			}
			month = parsed
		}

		selected := current
		if raw := r.URL.Query().Get("selected"); raw != "" {
			parsed, err := models.ParseDate(raw)
			if err != nil {
				log.Error("invalid selected date format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid selected date format"))

				return
			}
			selected = parsed
		}

		days := calendar.MonthGrid(month, selected, current)

		log.Info("calendar grid built",
			slog.String("month", month.Format(monthLayout)),
			slog.Int("cells", len(days)),
		)

		render.JSON(w, r, CalendarResponse{
			Response: response.OK(),
			Month:    month.Format(monthLayout),
			Days:     days,
		})
	}
}
