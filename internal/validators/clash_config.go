package validators

import (
	"context"

	"github.com/MKhiriev/clash-augmenter/models"
)

// Field name constants used to scope [ClashConfigValidator.Validate].
const (
	// FieldProxies checks that the document declares at least one proxy,
	// directly under "proxies" or through "proxy-providers".
	FieldProxies = "proxies"
)

// ClashConfigValidator implements the Validator interface for
// configuration documents. Only presence of proxies is checked; the rest of
// the document is opaque to the augmenter and passed through as-is.
type ClashConfigValidator struct {
}

// NewClashConfigValidator constructs a new ClashConfigValidator and returns
// it as the Validator interface.
func NewClashConfigValidator() Validator {
	return &ClashConfigValidator{}
}

// Validate accepts *models.ClashConfig and models.ClashConfig. Returns
// ErrUnsupportedType for anything else.
func (v *ClashConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.ClashConfig:
		if value == nil {
			return ErrNoProxiesFound
		}
		return v.validateClashConfig(ctx, value, fields...)
	case models.ClashConfig:
		return v.validateClashConfig(ctx, &value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ClashConfigValidator) validateClashConfig(_ context.Context, cfg *models.ClashConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProxies}
	}

	for _, f := range fields {
		switch f {
		case FieldProxies:
			proxyCount := cfg.ProxyCount()
			proxyProviderCount := cfg.ProxyProviderCount()
			if proxyCount == 0 && proxyProviderCount == 0 {
				return ErrNoProxiesFound
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
