package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clash-augmenter/internal/validators"
	"github.com/MKhiriev/clash-augmenter/models"
)

type AugmentValidationService struct {
	inner     AugmentService
	validator validators.Validator
}

func NewAugmentValidationService() AugmentServiceWrapper {
	return &AugmentValidationService{
		validator: validators.NewClashConfigValidator(),
	}
}

func (v *AugmentValidationService) Augment(ctx context.Context, cfg *models.ClashConfig, profileName string, opts ...AugmentOption) (*models.ClashConfig, error) {
	if err := v.validator.Validate(ctx, cfg, validators.FieldProxies); err != nil {
		return nil, fmt.Errorf("error during profile validation before augmenting: %w", err)
	}

	return v.inner.Augment(ctx, cfg, profileName, opts...)
}

func (v *AugmentValidationService) Wrap(inner AugmentService) AugmentService {
	v.inner = inner
	return v
}
