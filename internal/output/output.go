// Package output persists a generated dataset to files, Postgres and Kafka.
package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrisdamba/cafedatasim/internal/cloudwriter"
	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cafedatasim")

type Writer interface {
	WriteDataset(ctx context.Context, ds *models.Dataset) error
	Close() error
}

// MultiWriter writes to every destination in order and stops at the first
// failure. Close is safe to call more than once.
type MultiWriter struct {
	writers []Writer
	closed  bool
}

func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

func (m *MultiWriter) WriteDataset(ctx context.Context, ds *models.Dataset) error {
	for _, w := range m.writers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.WriteDataset(ctx, ds); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiWriter) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewFileWriter returns the table file writer for format, writing into dir.
func NewFileWriter(format, dir string, mirror *Mirror) (*FileWriter, error) {
	var encoder tableEncoder
	switch format {
	case "csv":
		encoder = csvEncoder{}
	case "json":
		encoder = jsonEncoder{}
	case "parquet":
		encoder = parquetEncoder{}
	default:
		return nil, fmt.Errorf("%w: unsupported output format: %s", models.ErrInvalidConfig, format)
	}
	return &FileWriter{dir: dir, encoder: encoder, mirror: mirror}, nil
}

// NewWriters builds the file writer for cfg plus the optional Postgres and
// Kafka destinations. The returned mirror is nil unless cloud storage is on.
func NewWriters(ctx context.Context, cfg *models.Config) (Writer, *Mirror, error) {
	dir := filepath.Join(cfg.OutputPath, cfg.OutputFolder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("%w: cannot create output directory %s: %v", models.ErrInvalidConfig, dir, err)
	}

	var mirror *Mirror
	if cfg.CloudStorage.Provider != "" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch cfg.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(ctx, cfg.CloudStorage.Region)
		default:
			return nil, nil, fmt.Errorf("%w: unsupported cloud storage provider: %s", models.ErrInvalidConfig, cfg.CloudStorage.Provider)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		mirror = NewMirror(factory, cfg.CloudStorage.BucketName, cfg.CloudStorage.Prefix)
	}

	files, err := NewFileWriter(cfg.OutputFormat, dir, mirror)
	if err != nil {
		return nil, nil, err
	}
	writers := []Writer{files}

	if cfg.Database.Enabled {
		pg, err := NewPostgresWriter(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, pg)
	}

	if cfg.Kafka.Enabled {
		kw, err := NewKafkaWriter(cfg.Kafka)
		if err != nil {
			NewMultiWriter(writers...).Close()
			return nil, nil, err
		}
		writers = append(writers, kw)
	}

	return NewMultiWriter(writers...), mirror, nil
}
