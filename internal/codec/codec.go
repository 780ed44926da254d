package codec

import (
	"fmt"
	"io"
	"strings"

	"shapelab/internal/domain"
)

// Importer interface for importing shape documents from various formats
type Importer interface {
	Parse(r io.Reader) (*domain.ShapeDocument, error)
	Format() string
}

// Exporter interface for exporting evaluation reports to various formats
type Exporter interface {
	Export(report *domain.Report, w io.Writer) error
	Format() string
}

// Codec both imports documents and exports reports
type Codec interface {
	Importer
	Exporter
}

// ForFormat returns the codec registered for a format name
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatFromPath infers a codec format from a file extension
func FormatFromPath(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 || idx == len(path)-1 {
		return ""
	}
	return strings.ToLower(path[idx+1:])
}

// validateDocument rejects specs that name no shape kind
func validateDocument(doc *domain.ShapeDocument) error {
	for i, spec := range doc.Shapes {
		if strings.TrimSpace(spec.Type) == "" {
			return fmt.Errorf("shape %d: missing type", i)
		}
	}
	return nil
}
