package output

import (
	"fmt"

	"github.com/chrisdamba/cafedatasim/internal/cloudwriter"
)

// Mirror copies finished local files to object storage.
type Mirror struct {
	factory cloudwriter.CloudWriterFactory
	bucket  string
	prefix  string
}

func NewMirror(factory cloudwriter.CloudWriterFactory, bucket, prefix string) *Mirror {
	return &Mirror{factory: factory, bucket: bucket, prefix: prefix}
}

// Upload sends every path in order, stopping at the first failure. A nil
// Mirror uploads nothing.
func (m *Mirror) Upload(subdir string, paths ...string) error {
	if m == nil {
		return nil
	}
	prefix := m.prefix
	if subdir != "" {
		prefix = prefix + "/" + subdir
		if m.prefix == "" {
			prefix = subdir
		}
	}
	for _, p := range paths {
		key, err := cloudwriter.UploadFile(m.factory, m.bucket, prefix, p)
		if err != nil {
			return fmt.Errorf("failed to mirror %s: %w", p, err)
		}
		log.Debugf("Uploaded %s to %s/%s", p, m.bucket, key)
	}
	return nil
}
