package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"turfBooker/internal/booking"
	"turfBooker/internal/config"
	"turfBooker/internal/http-server/handlers/booking/createBooking"
	"turfBooker/internal/http-server/handlers/booking/getAllBookings"
	"turfBooker/internal/http-server/handlers/booking/getAvailability"
	"turfBooker/internal/http-server/handlers/booking/getBooking"
	"turfBooker/internal/http-server/handlers/calendar/getCalendar"
	"turfBooker/internal/http-server/handlers/sport/getSports"
	"turfBooker/internal/http-server/handlers/user/getUser"
	"turfBooker/internal/http-server/handlers/user/saveUser"
	"turfBooker/internal/http-server/middleware/mwlogger"
	"turfBooker/internal/lib/logger/handlers/slogpretty"
	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
	"turfBooker/internal/notification"
	"turfBooker/internal/storage/jsonfile"
	"turfBooker/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// storage is what main needs from a backend: the engine's store plus the
// current-user record and a lifecycle hook.
type storage interface {
	booking.Store
	SaveCurrentUser(user models.User) error
	CurrentUser() (*models.User, error)
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting turf booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	store, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	catalog := booking.NewCatalog(
		models.DefaultSports(),
		models.HourlySlots(cfg.Booking.OpenHour, cfg.Booking.CloseHour),
	)

	var discount booking.DiscountPolicy = booking.NoDiscount{}
	if len(cfg.Booking.Discounts) > 0 {
		discount = booking.PercentTable(cfg.Booking.Discounts)
	}

	service := booking.NewService(store, catalog, discount, time.Now)

	notifier, err := notification.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, log)
	if err != nil {
		log.Error("failed to init notifier", sl.Err(err))
		os.Exit(1)
	}
	service.SetNotifier(notifier)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/bookings", createBooking.New(log, service))
	router.Get("/bookings", getAllBookings.New(log, service))
	router.Get("/bookings/{id}", getBooking.New(log, service))
	router.Get("/availability", getAvailability.New(log, service))
	router.Get("/calendar", getCalendar.New(log, time.Now))
	router.Get("/sports", getSports.New(log, catalog))
	router.Get("/user", getUser.New(log, store))
	router.Post("/user", saveUser.New(log, store))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config) (storage, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		return postgres.InitDB(&cfg.Database)
	default:
		return jsonfile.New(cfg.Storage.Path), nil
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
