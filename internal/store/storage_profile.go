// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/clash-augmenter/internal/codec"
	"github.com/MKhiriev/clash-augmenter/internal/logger"
	"github.com/MKhiriev/clash-augmenter/models"
)

const stdStream = "-"

// profileFileStorage is the filesystem implementation of [ProfileStorage].
type profileFileStorage struct {
	stdin  io.Reader
	stdout io.Writer

	logger *logger.Logger
}

// NewProfileFileStorage constructs a [ProfileStorage] that reads "-" from
// stdin and writes "-" to stdout.
func NewProfileFileStorage(stdin io.Reader, stdout io.Writer, logger *logger.Logger) ProfileStorage {
	return &profileFileStorage{
		stdin:  stdin,
		stdout: stdout,
		logger: logger,
	}
}

// Load reads and decodes the document at path.
func (p *profileFileStorage) Load(ctx context.Context, path string, format codec.Format) (*models.ClashConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format = resolveFormat(path, format)

	var (
		data []byte
		err  error
	)
	if isStdStream(path) {
		p.logger.Debug().Msg("reading profile from stdin")
		data, err = io.ReadAll(p.stdin)
	} else {
		p.logger.Debug().Str("path", path).Msg("reading profile from file")
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingProfile, err)
	}

	return codec.Decode(data, format)
}

// Save encodes cfg and writes it to path. Files are replaced atomically:
// the document is written to a temporary file in the target directory and
// renamed over the destination.
func (p *profileFileStorage) Save(ctx context.Context, path string, cfg *models.ClashConfig, format codec.Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := codec.Encode(cfg, resolveFormat(path, format))
	if err != nil {
		return err
	}

	if isStdStream(path) {
		if _, err = p.stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingProfile, err)
		}
		return nil
	}

	p.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("writing profile to file")
	if err = writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingProfile, err)
	}

	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func resolveFormat(path string, format codec.Format) codec.Format {
	if format != "" {
		return format
	}
	if isStdStream(path) {
		return codec.FormatYAML
	}
	return codec.FormatFromPath(path)
}

func isStdStream(path string) bool {
	return path == "" || path == stdStream
}
