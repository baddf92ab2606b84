package cloudwriter

import (
	"fmt"
	"io"
	"os"
	"path"
)

// CloudWriter buffers an object and uploads it on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// UploadFile copies the local file at localPath to bucket/prefix/name.
func UploadFile(factory CloudWriterFactory, bucket, prefix, localPath string) (string, error) {
	objectPath := path.Join(prefix, path.Base(localPath))

	file, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	w, err := factory.NewWriter(bucket, objectPath)
	if err != nil {
		return "", fmt.Errorf("failed to create cloud file writer: %w", err)
	}
	if _, err := io.Copy(w, file); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to buffer %s: %w", localPath, err)
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return objectPath, nil
}
