package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/clash-augmenter/internal/codec"
	"github.com/MKhiriev/clash-augmenter/internal/config"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/internal/utils"
	"github.com/MKhiriev/clash-augmenter/models"
)

const (
	pathAugment = "/api/augment"
	pathPresets = "/api/presets"
	pathPreset  = "/api/presets/{name}"
	pathVersion = "/api/version/"
)

type httpAugmentAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAugmentAdapter constructs an HTTP/REST implementation of
// [AugmentAdapter]. It normalises cfg.HTTPAddress into a base URL and applies
// cfg.RequestTimeout to every request.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPAugmentAdapter(cfg config.Adapter, logger *logger.Logger) (AugmentAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.DefaultUserAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("augment adapter created")

	return &httpAugmentAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Augment implements [AugmentAdapter]. The document travels as JSON both
// ways so key order survives without a YAML round trip on the server.
func (h *httpAugmentAdapter) Augment(ctx context.Context, cfg *models.ClashConfig, params AugmentParams) (*models.ClashConfig, error) {
	body, err := codec.Encode(cfg, codec.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("augment encode request: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", codec.FormatJSON.ContentType()).
		SetHeader("Accept", codec.FormatJSON.ContentType()).
		SetBody(body)

	for key, value := range map[string]string{
		"profile": params.Profile,
		"preset":  params.Preset,
		"merge":   string(params.GroupMerge),
	} {
		if value != "" {
			req.SetQueryParam(key, value)
		}
	}

	resp, err := req.Post(pathAugment)
	if err != nil {
		return nil, fmt.Errorf("augment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	augmented, err := codec.Decode(resp.Body(), codec.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("decode augment response: %w", err)
	}

	return augmented, nil
}

// ListPresets implements [AugmentAdapter].
func (h *httpAugmentAdapter) ListPresets(ctx context.Context) ([]models.PresetSummary, error) {
	var summaries []models.PresetSummary

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&summaries).
		Get(pathPresets)
	if err != nil {
		return nil, fmt.Errorf("list presets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetPreset implements [AugmentAdapter].
func (h *httpAugmentAdapter) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	var preset models.Preset

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetResult(&preset).
		Get(pathPreset)
	if err != nil {
		return models.Preset{}, fmt.Errorf("get preset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Preset{}, err
	}

	return preset, nil
}

// Version implements [AugmentAdapter].
func (h *httpAugmentAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(pathVersion)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
