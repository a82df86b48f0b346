package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/clash-augmenter/internal/codec"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/service"
	"github.com/MKhiriev/clash-augmenter/models"
)

// Query parameters accepted by POST /api/augment.
const (
	queryProfile = "profile"
	queryPreset  = "preset"
	queryMerge   = "merge"
	queryFormat  = "format"
)

// augment handles POST /api/augment. The body is a YAML or JSON document
// (picked by Content-Type, YAML otherwise); the response uses the format
// from the format query parameter, then Accept, then the request's own.
func (h *Handler) augment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	query := r.URL.Query()

	opts := []service.AugmentOption{service.WithPreset(query.Get(queryPreset))}
	if merge := query.Get(queryMerge); merge != "" {
		direction, err := models.ParseMergeDirection(merge)
		if err != nil {
			writeError(w, r, err, "invalid merge direction")
			return
		}
		opts = append(opts, service.WithGroupMerge(direction))
	}

	inFormat, ok := codec.FormatFromContentType(r.Header.Get("Content-Type"))
	if !ok {
		inFormat = codec.FormatYAML
	}
	outFormat, err := responseFormat(r, inFormat)
	if err != nil {
		writeError(w, r, err, "invalid response format")
		return
	}

	body, err := h.readBody(w, r)
	if err != nil {
		writeError(w, r, err, "error reading request body")
		return
	}

	cfg, err := codec.Decode(body, inFormat)
	if err != nil {
		writeError(w, r, err, "error decoding configuration document")
		return
	}

	augmented, err := h.services.AugmentService.Augment(ctx, cfg, query.Get(queryProfile), opts...)
	if err != nil {
		writeError(w, r, err, "error augmenting configuration document")
		return
	}

	out, err := codec.Encode(augmented, outFormat)
	if err != nil {
		writeError(w, r, err, "error encoding configuration document")
		return
	}

	w.Header().Set("Content-Type", outFormat.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(out); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func responseFormat(r *http.Request, fallback codec.Format) (codec.Format, error) {
	if raw := r.URL.Query().Get(queryFormat); raw != "" {
		return codec.ParseFormat(raw)
	}
	if format, ok := codec.FormatFromContentType(r.Header.Get("Accept")); ok {
		return format, nil
	}
	return fallback, nil
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		return nil, err
	}
	return body, nil
}
