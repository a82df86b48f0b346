package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/clash-augmenter/internal/app"
	"github.com/MKhiriev/clash-augmenter/internal/codec"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/presets"
	"github.com/MKhiriev/clash-augmenter/internal/validators"
	"github.com/MKhiriev/clash-augmenter/models"
)

var errorStatusMap = map[error]int{
	codec.ErrInvalidDocument:        http.StatusBadRequest,
	codec.ErrUnknownFormat:          http.StatusBadRequest,
	models.ErrUnknownMergeDirection: http.StatusBadRequest,
	presets.ErrUnknownPreset:        http.StatusNotFound,
	ErrBodyTooLarge:                 http.StatusRequestEntityTooLarge,
	validators.ErrNoProxiesFound:    http.StatusUnprocessableEntity,
}

var errorMessageMap = map[error]string{
	codec.ErrInvalidDocument:        app.MsgInvalidDocument,
	codec.ErrUnknownFormat:          app.MsgUnsupportedFormat,
	models.ErrUnknownMergeDirection: app.MsgInvalidMergeDirection,
	presets.ErrUnknownPreset:        app.MsgUnknownPreset,
	ErrBodyTooLarge:                 app.MsgBodyTooLarge,
	validators.ErrNoProxiesFound:    app.MsgNoProxiesFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with the status and message mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	http.Error(w, messageFromError(err), status)
}
