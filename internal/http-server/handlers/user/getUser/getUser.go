package getUser

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"turfBooker/internal/lib/api/response"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
)

type UserResponse struct {
	response.Response
	User *models.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	CurrentUser() (*models.User, error)
}

// New returns the stored current-user record; 404 when nobody is stored.
func New(log *slog.Logger, provider UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getUser.New"

		log = log.With(slog.String("op", op))

		user, err := provider.CurrentUser()
		if err != nil {
			log.Error("failed to get current user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get current user"))

			return
		}

		if user == nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no current user"))

			return
		}

		log.Info("current user retrieved", slog.String("user_id", user.ID))

		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
