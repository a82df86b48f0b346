package store

import (
	"io"
	"os"

	"github.com/MKhiriev/clash-augmenter/internal/logger"
)

type Storages struct {
	ProfileStorage ProfileStorage
}

// NewStorages wires the storages to the process standard streams.
func NewStorages(logger *logger.Logger) *Storages {
	return NewStoragesWithStreams(os.Stdin, os.Stdout, logger)
}

func NewStoragesWithStreams(stdin io.Reader, stdout io.Writer, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		ProfileStorage: NewProfileFileStorage(stdin, stdout, logger),
	}
}
