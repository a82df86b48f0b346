package store

import (
	"context"

	"github.com/MKhiriev/clash-augmenter/internal/codec"
	"github.com/MKhiriev/clash-augmenter/models"
)

// ProfileStorage reads and writes configuration documents.
//
// A path of "-" or "" names standard input for Load and standard output for
// Save. An empty format is detected from the path extension.
type ProfileStorage interface {
	Load(ctx context.Context, path string, format codec.Format) (*models.ClashConfig, error)
	Save(ctx context.Context, path string, cfg *models.ClashConfig, format codec.Format) error
}
