package service

import (
	"errors"
	"fmt"
	"io"
	"math"

	"shapelab/internal/codec"
	"shapelab/internal/domain"

	"go.uber.org/zap"
)

// ShapeService builds shapes through a factory and measures them
type ShapeService struct {
	factory *domain.Factory
	logger  *zap.Logger
}

// NewShapeService creates a new shape service. A nil factory uses the
// built-in kinds; a nil logger discards output.
func NewShapeService(factory *domain.Factory, logger *zap.Logger) *ShapeService {
	if factory == nil {
		factory = domain.NewFactory()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShapeService{
		factory: factory,
		logger:  logger,
	}
}

// Kinds returns the shape kinds the service can build
func (s *ShapeService) Kinds() []string {
	return s.factory.Kinds()
}

// Create builds a single shape
func (s *ShapeService) Create(shapeType string, params ...float64) (domain.Shape, error) {
	shape, err := s.factory.Create(shapeType, params...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("shape created",
		zap.String("type", shapeType),
		zap.Float64s("params", params),
		zap.Stringer("shape", shapeStringer{shape}))
	return shape, nil
}

// Evaluate builds and measures every spec in the document. A failing spec,
// or one whose area is not a finite number, is recorded in the report and
// does not stop the rest.
func (s *ShapeService) Evaluate(doc *domain.ShapeDocument) *domain.Report {
	report := domain.NewReport()

	for i, spec := range doc.Shapes {
		eval := domain.Evaluation{
			Index:  i,
			Type:   spec.Type,
			Params: spec.Params,
		}

		shape, err := s.Create(spec.Type, spec.Params...)
		if err != nil {
			eval.Error = err.Error()
			s.logger.Warn("shape rejected",
				zap.Int("index", i),
				zap.String("type", spec.Type),
				zap.Bool("invalid_argument", errors.Is(err, domain.ErrInvalidArgument)),
				zap.Error(err))
		} else if area := domain.CalculateArea(shape); math.IsInf(area, 0) || math.IsNaN(area) {
			eval.Shape = shapeStringer{shape}.String()
			eval.Error = fmt.Sprintf("area of %s is outside the float64 range", eval.Shape)
			s.logger.Warn("shape area not finite",
				zap.Int("index", i),
				zap.String("shape", eval.Shape))
		} else {
			eval.Shape = shapeStringer{shape}.String()
			eval.Area = area
			eval.RightAngled = shape.IsRightAngled()
		}

		report.Add(eval)
	}

	s.logger.Info("document evaluated",
		zap.Int("shapes", len(doc.Shapes)),
		zap.Int("failed", report.Failed),
		zap.Float64("total_area", report.Total))

	return report
}

// EvaluateReader decodes a document in the given format and evaluates it
func (s *ShapeService) EvaluateReader(r io.Reader, format string) (*domain.Report, error) {
	c, err := codec.ForFormat(format)
	if err != nil {
		return nil, err
	}

	doc, err := c.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return s.Evaluate(doc), nil
}

// ExportReport writes a report in the given format
func (s *ShapeService) ExportReport(report *domain.Report, w io.Writer, format string) error {
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	return c.Export(report, w)
}

// shapeStringer describes shapes that do not implement fmt.Stringer by type
type shapeStringer struct {
	shape domain.Shape
}

func (s shapeStringer) String() string {
	if str, ok := s.shape.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%T", s.shape)
}
