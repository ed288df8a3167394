package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"turfBooker/internal/booking"
	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
)

type BookingRequest struct {
	FullName      string   `json:"full_name" validate:"required"`
	Phone         string   `json:"phone" validate:"required"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Sport         string   `json:"sport" validate:"required"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	Slots         []string `json:"slots" validate:"required,min=1"`
	Players       int      `json:"players" validate:"omitempty,min=1"`
	Notes         string   `json:"notes"`
	PaymentMethod string   `json:"payment_method" validate:"required"`
	PaymentAmount string   `json:"payment_amount" validate:"required,oneof=confirmation full"`
	DiscountCode  string   `json:"discount_code"`
	UserID        string   `json:"user_id"`
}

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSubmitter
type BookingSubmitter interface {
	Submit(input booking.SubmitInput) (models.Booking, error)
}

func New(log *slog.Logger, submitter BookingSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))

				return
			}
		}

		input := booking.SubmitInput{
			FullName:      req.FullName,
			Phone:         req.Phone,
			Email:         req.Email,
			Sport:         req.Sport,
			Date:          req.Date,
			Slots:         req.Slots,
			Players:       req.Players,
			Notes:         req.Notes,
			PaymentMethod: req.PaymentMethod,
			PaymentAmount: models.PaymentAmount(req.PaymentAmount),
			DiscountCode:  req.DiscountCode,
		}

		if req.UserID != "" {
			input.User = &models.User{ID: req.UserID, Name: req.FullName, Phone: req.Phone}
		}

		created, err := submitter.Submit(input)
		if err != nil {
			log.Error("failed to submit booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrSlotConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("slot is already booked"))
			case errors.Is(err, booking.ErrPastDate):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("date is in the past"))
			case errors.Is(err, booking.ErrMissingField):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("required field is missing"))
			case errors.Is(err, booking.ErrUnknownSport):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown sport"))
			case errors.Is(err, booking.ErrUnknownSlot):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown time slot"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit booking"))
			}

			return
		}

		log.Info("booking created",
			slog.String("id", created.ID),
			slog.String("sport", created.Sport),
			slog.String("date", created.Date),
		)

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, created models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  created,
	})
}
