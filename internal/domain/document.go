package domain

// ShapeSpec is a factory request: a shape kind and its positional parameters
type ShapeSpec struct {
	Type   string    `json:"type" yaml:"type"`
	Params []float64 `json:"params" yaml:"params"`
}

// ShapeDocument is a batch of shape specs read from a file
type ShapeDocument struct {
	Shapes []ShapeSpec `json:"shapes" yaml:"shapes"`
}

// Evaluation is the outcome of building and measuring one spec
type Evaluation struct {
	Index       int       `json:"index" yaml:"index"`
	Type        string    `json:"type" yaml:"type"`
	Params      []float64 `json:"params" yaml:"params"`
	Shape       string    `json:"shape,omitempty" yaml:"shape,omitempty"`
	Area        float64   `json:"area" yaml:"area"`
	RightAngled bool      `json:"right_angled" yaml:"right_angled"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK returns true if the spec produced a shape
func (e Evaluation) OK() bool {
	return e.Error == ""
}

// Report collects evaluations for a whole document
type Report struct {
	Evaluations []Evaluation `json:"evaluations" yaml:"evaluations"`
	Total       float64      `json:"total_area" yaml:"total_area"`
	Failed      int          `json:"failed" yaml:"failed"`
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{
		Evaluations: make([]Evaluation, 0),
	}
}

// Add appends an evaluation and updates the totals
func (r *Report) Add(e Evaluation) {
	r.Evaluations = append(r.Evaluations, e)
	if e.OK() {
		r.Total += e.Area
	} else {
		r.Failed++
	}
}
