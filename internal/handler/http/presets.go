package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/utils"
)

func (h *Handler) listPresets(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.services.PresetService.ListPresets(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing presets")
		return
	}

	if _, err = utils.WriteJSON(w, summaries, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing presets")
	}
}

func (h *Handler) getPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	preset, err := h.services.PresetService.GetPreset(r.Context(), name)
	if err != nil {
		writeError(w, r, err, "error getting preset")
		return
	}

	if _, err = utils.WriteJSON(w, preset, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing preset")
	}
}
