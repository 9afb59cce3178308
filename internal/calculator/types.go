package calculator

import "separator-calculator/internal/separator"

// ComputeRequest is the JSON body for POST /separator/{calculator}.
// Each input is a JSON number or the raw text a user typed.
type ComputeRequest struct {
	Inputs map[string]any `json:"inputs"`
}

// StepResponse is one derivation step in a compute response.
type StepResponse struct {
	Label     string   `json:"label"`
	Symbol    string   `json:"symbol"`
	Unit      string   `json:"unit,omitempty"`
	Value     *float64 `json:"value"` // null when NaN or ±Inf
	Result    string   `json:"result"`
	Narrative string   `json:"narrative"`
}

// CalcResponse is the JSON response for a compute request.
type CalcResponse struct {
	Calculator string            `json:"calculator"`
	Inputs     map[string]string `json:"inputs"` // as substituted into the formulas
	Steps      []StepResponse    `json:"steps"`
	Markdown   string            `json:"markdown"`
}

// SchemaResponse describes a calculator's inputs for form rendering.
type SchemaResponse[T any] struct {
	Calculator string              `json:"calculator"`
	Title      string              `json:"title"`
	Steps      int                 `json:"steps"`
	Fields     separator.Schema[T] `json:"fields"`
}

// IndexEntry lists one calculator on GET /separator.
type IndexEntry struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Steps int    `json:"steps"`
}

var index = []IndexEntry{
	{Name: separator.TwoPhase, Title: "Two-Phase Separator", Path: "/separator/" + separator.TwoPhase, Steps: separator.TwoPhaseStepCount},
	{Name: separator.ThreePhase, Title: "Three-Phase Separator", Path: "/separator/" + separator.ThreePhase, Steps: separator.ThreePhaseStepCount},
}

func newCalcResponse(calc separator.Calculation, inputs map[string]float64) CalcResponse {
	resp := CalcResponse{
		Calculator: calc.Calculator,
		Inputs:     make(map[string]string, len(inputs)),
		Steps:      make([]StepResponse, len(calc.Steps)),
		Markdown:   calc.Markdown(),
	}
	for name, v := range inputs {
		resp.Inputs[name] = separator.FormatRaw(v)
	}
	for i, s := range calc.Steps {
		sr := StepResponse{
			Label:     s.Label,
			Symbol:    s.Symbol,
			Unit:      s.Unit,
			Result:    s.Result(),
			Narrative: s.Narrative(),
		}
		if s.Finite() {
			v := s.Value
			sr.Value = &v
		}
		resp.Steps[i] = sr
	}
	return resp
}
