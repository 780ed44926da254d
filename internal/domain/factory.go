package domain

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Shape kind names registered by NewFactory
const (
	KindCircle   = "circle"
	KindTriangle = "triangle"
)

// Constructor builds a shape from positional parameters
type Constructor func(params ...float64) (Shape, error)

// Factory maps normalized shape names to constructors
type Factory struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewFactory creates a factory with the built-in circle and triangle kinds
func NewFactory() *Factory {
	f := &Factory{constructors: make(map[string]Constructor)}
	f.constructors[KindCircle] = newCircleFromParams
	f.constructors[KindTriangle] = newTriangleFromParams
	return f
}

// Register adds a new shape kind. Names are case-insensitive.
func (f *Factory) Register(name string, ctor Constructor) error {
	key := strings.ToLower(name)
	if key == "" {
		return fmt.Errorf("%w: shape type name is empty", ErrInvalidArgument)
	}
	if ctor == nil {
		return fmt.Errorf("%w: nil constructor for shape type %s", ErrInvalidArgument, key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.constructors[key]; exists {
		return fmt.Errorf("%w: shape type already registered: %s", ErrInvalidArgument, key)
	}
	f.constructors[key] = ctor
	return nil
}

// Create builds the shape registered under shapeType
func (f *Factory) Create(shapeType string, params ...float64) (Shape, error) {
	key := strings.ToLower(shapeType)

	f.mu.RLock()
	ctor, ok := f.constructors[key]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: unknown shape type: %s", ErrInvalidArgument, key)
	}
	return ctor(params...)
}

// Kinds returns the registered shape names in sorted order
func (f *Factory) Kinds() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	kinds := make([]string, 0, len(f.constructors))
	for k := range f.constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

var defaultFactory = NewFactory()

// CreateShape builds a shape through the default factory
func CreateShape(shapeType string, params ...float64) (Shape, error) {
	return defaultFactory.Create(shapeType, params...)
}

// CheckArity returns an ErrInvalidArgument error unless exactly want
// parameters were supplied
func CheckArity(kind string, want int, params []float64) error {
	if len(params) != want {
		return fmt.Errorf("%w: %s expects %d parameter(s), got %d",
			ErrInvalidArgument, kind, want, len(params))
	}
	return nil
}

func newCircleFromParams(params ...float64) (Shape, error) {
	if err := CheckArity(KindCircle, 1, params); err != nil {
		return nil, err
	}
	c, err := NewCircle(params[0])
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newTriangleFromParams(params ...float64) (Shape, error) {
	if err := CheckArity(KindTriangle, 3, params); err != nil {
		return nil, err
	}
	t, err := NewTriangle(params[0], params[1], params[2])
	if err != nil {
		return nil, err
	}
	return t, nil
}
