package config

import (
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

// NewLogger builds the application logger for the configured environment.
func NewLogger(cfg *structs.Config) *gecho.Logger {
	level := gecho.ParseLogLevel(LogLevel(cfg))
	return gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(true),
		gecho.WithLogLevel(level),
	))
}

// NewMiddlewareLogger is a quieter logger for request logging middleware.
func NewMiddlewareLogger(cfg *structs.Config) *gecho.Logger {
	level := gecho.ParseLogLevel(LogLevel(cfg))
	return gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(false),
		gecho.WithLogLevel(level),
	))
}
