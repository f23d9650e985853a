package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/Jopa26/MovieBookingProject/internal/booking"
	"github.com/Jopa26/MovieBookingProject/internal/domain"
	"github.com/Jopa26/MovieBookingProject/internal/repository"
	appvalidator "github.com/Jopa26/MovieBookingProject/internal/validator"
	"github.com/Jopa26/MovieBookingProject/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate

	movieRepo   domain.MovieRepository
	theaterRepo domain.TheaterRepository
	screenRepo  domain.ScreenRepository
	showRepo    domain.ShowRepository
	ledger      domain.BookingLedger

	bookings domain.BookingService
}

type config struct {
	port int
	env  string
	seed bool
}

func Run() error {
	// A missing .env is fine; flags fall back to their defaults.
	_ = godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", envInt("PORT", 4000), "server port")
	flag.StringVar(&cfg.env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")
	flag.BoolVar(&cfg.seed, "seed", envBool("SEED_DEMO_DATA", false), "Seed a demo catalog at startup")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	movieRepo := repository.NewMemoryMovieRepository()
	theaterRepo := repository.NewMemoryTheaterRepository()
	screenRepo := repository.NewMemoryScreenRepository(theaterRepo)
	showRepo := repository.NewMemoryShowRepository(movieRepo, screenRepo)
	ledger := repository.NewMemoryBookingLedger()

	engine := booking.NewEngine(showRepo, screenRepo, ledger, logger)

	app := &application{
		config:      cfg,
		logger:      logger,
		validator:   validator,
		movieRepo:   movieRepo,
		theaterRepo: theaterRepo,
		screenRepo:  screenRepo,
		showRepo:    showRepo,
		ledger:      ledger,
		bookings:    engine,
	}

	if cfg.seed {
		if err := app.seedDemoData(context.Background()); err != nil {
			return err
		}
	}

	return app.run()
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Post("/", app.CreateMovie)
		r.Get("/{title}/showtimes", app.GetShowtimesByMovie)
	})

	r.Route("/theaters", func(r chi.Router) {
		r.Get("/", app.GetTheaters)
		r.Post("/", app.CreateTheater)
		r.Get("/{theaterId}/screens", app.GetScreensByTheater)
	})

	r.Post("/screens", app.CreateScreen)

	r.Route("/shows", func(r chi.Router) {
		r.Post("/", app.CreateShow)
		r.Get("/{showId}/seats", app.GetSeatMapByShow)
		r.Get("/{showId}/available-seats", app.GetAvailableSeats)
		r.Get("/{showId}/bookings", app.GetBookingsByShow)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)
		r.Get("/{bookingId}", app.GetBooking)
		r.Delete("/{bookingId}", app.CancelBooking)
	})

	return r
}
