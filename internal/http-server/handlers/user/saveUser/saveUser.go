package saveUser

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
)

type UserRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

type UserResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserSaver
type UserSaver interface {
	SaveCurrentUser(user models.User) error
}

// New persists the single current-user record used to pre-fill contact
// fields on later bookings.
func New(log *slog.Logger, saver UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.saveUser.New"

		log = log.With(slog.String("op", op))

		var req UserRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))

				return
			}
		}

		err = saver.SaveCurrentUser(models.User{
			ID:    req.ID,
			Name:  req.Name,
			Phone: req.Phone,
			Email: req.Email,
		})
		if err != nil {
			log.Error("failed to save user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save user"))

			return
		}

		log.Info("current user saved", slog.String("user_id", req.ID))

		render.JSON(w, r, UserResponse{Response: response.OK()})
	}
}
