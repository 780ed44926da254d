package codec

import (
	"errors"
	"fmt"
	"io"

	"shapelab/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlDocument represents the YAML structure for a shape document
type yamlDocument struct {
	Shapes []yamlShape `yaml:"shapes"`
}

type yamlShape struct {
	Type   string    `yaml:"type"`
	Params []float64 `yaml:"params,flow"`
}

// Parse imports a shape document from YAML
func (c *YAMLCodec) Parse(r io.Reader) (*domain.ShapeDocument, error) {
	var yd yamlDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&yd); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	doc := &domain.ShapeDocument{
		Shapes: make([]domain.ShapeSpec, 0, len(yd.Shapes)),
	}
	for _, ys := range yd.Shapes {
		doc.Shapes = append(doc.Shapes, domain.ShapeSpec{
			Type:   ys.Type,
			Params: ys.Params,
		})
	}

	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return doc, nil
}

// Export exports an evaluation report to YAML
func (c *YAMLCodec) Export(report *domain.Report, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
