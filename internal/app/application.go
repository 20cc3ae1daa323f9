package app

import (
	"log/slog"

	"ledcalc/internal/appconf"
)

// Application holds the dependencies shared by the HTTP handlers and middleware.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
}
