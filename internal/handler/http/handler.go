package http

import (
	"time"

	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/service"
)

type Handler struct {
	services *service.Services

	maxBodyBytes   int64
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A non-positive body limit falls back
// to [config.DefaultMaxBodyBytes]; a zero request timeout disables the
// per-request deadline.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = config.DefaultMaxBodyBytes
	}

	return &Handler{
		services:       services,
		maxBodyBytes:   maxBodyBytes,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
