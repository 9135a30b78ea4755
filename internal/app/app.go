package app

import (
	"showbill/config"
	"showbill/internal/database"
	"showbill/internal/handlers/middleware"
	"showbill/internal/repositories"
	"showbill/internal/services"

	artistController "showbill/internal/controllers/artists"
	showController "showbill/internal/controllers/shows"
	venueController "showbill/internal/controllers/venues"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Services
	TransactionService *services.TransactionService

	// Repositories
	Repository repositories.Repository

	// Controllers
	VenueController  venueController.VenueControllerInterface
	ArtistController artistController.ArtistControllerInterface
	ShowController   showController.ShowControllerInterface
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	appServices := services.New(db)
	appMiddleware := middleware.New(db, config)

	app := &App{
		Database:           db,
		Config:             config,
		Middleware:         appMiddleware,
		TransactionService: appServices.Transaction,
		Repository:         repos,
		VenueController:    venueController.New(repos, appServices),
		ArtistController:   artistController.New(repos, appServices),
		ShowController:     showController.New(repos, appServices),
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.TransactionService,
		a.Repository.Venue,
		a.Repository.Artist,
		a.Repository.Show,
		a.VenueController,
		a.ArtistController,
		a.ShowController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
