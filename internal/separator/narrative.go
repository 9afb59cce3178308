package separator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Step is one derivation step: what is computed, the symbolic formula, the
// formula with values substituted, and the result.
type Step struct {
	Label        string  // "Step 3"
	Title        string  // "Calculate Terminal Velocity (Vt)"
	Symbol       string  // "Vt"
	Formula      string  // symbolic right-hand side, including "Vt = "
	Substitution string  // Formula with numbers in place of symbols
	Value        float64 // full precision; only the narrative is rounded
	Unit         string  // empty for dimensionless results
	Decimals     int     // display precision of Value
}

// Result renders "<symbol> = <value> <unit>".
func (s Step) Result() string {
	r := s.Symbol + " = " + FormatFixed(s.Value, s.Decimals)
	if s.Unit != "" {
		r += " " + s.Unit
	}
	return r
}

// Narrative renders the step as a markdown-lite text block:
//
//	**Step 1:** Calculate Liquid Density (ρl):
//	Formula: ρl = (141.5 / (131.5 + API)) × 62.4
//	Substitute: ρl = (141.5 / (131.5 + 40)) × 62.4
//	ρl = 51.48 lb/ft³
func (s Step) Narrative() string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s:** %s:\n", s.Label, s.Title)
	if s.Formula != "" {
		fmt.Fprintf(&b, "Formula: %s\n", s.Formula)
	}
	if s.Substitution != "" {
		fmt.Fprintf(&b, "Substitute: %s\n", s.Substitution)
	}
	b.WriteString(s.Result())
	return b.String()
}

// Finite reports whether the step produced a usable number.
func (s Step) Finite() bool {
	return !math.IsNaN(s.Value) && !math.IsInf(s.Value, 0)
}

// Calculation is the ordered derivation produced by one engine run.
type Calculation struct {
	Calculator string
	Steps      []Step
}

// Last returns the final step, or the zero Step for an empty calculation.
func (c Calculation) Last() Step {
	if len(c.Steps) == 0 {
		return Step{}
	}
	return c.Steps[len(c.Steps)-1]
}

// Lookup finds the step that computes symbol.
func (c Calculation) Lookup(symbol string) (Step, bool) {
	for _, s := range c.Steps {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return Step{}, false
}

// Narratives returns every step's narrative in order.
func (c Calculation) Narratives() []string {
	out := make([]string, len(c.Steps))
	for i, s := range c.Steps {
		out[i] = s.Narrative()
	}
	return out
}

// NonFinite counts steps whose value is NaN or ±Inf.
func (c Calculation) NonFinite() int {
	n := 0
	for _, s := range c.Steps {
		if !s.Finite() {
			n++
		}
	}
	return n
}

// Markdown renders the calculation as a numbered list, one step per item.
func (c Calculation) Markdown() string {
	var b strings.Builder
	for i, s := range c.Steps {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, strings.ReplaceAll(s.Narrative(), "\n", "\n   "))
	}
	return b.String()
}

// derivation accumulates steps and numbers them.
type derivation struct {
	steps []Step
}

func newDerivation(n int) *derivation {
	return &derivation{steps: make([]Step, 0, n)}
}

// add labels s and appends it, returning its value so formulas can chain.
func (d *derivation) add(s Step) float64 {
	s.Label = "Step " + strconv.Itoa(len(d.steps)+1)
	d.steps = append(d.steps, s)
	return s.Value
}

func (d *derivation) calculation(name string) Calculation {
	return Calculation{Calculator: name, Steps: d.steps}
}

// FormatFixed renders v with a fixed number of decimals. Non-finite values
// render as NaN, Infinity and -Infinity, and negative zero loses its sign.
func FormatFixed(v float64, decimals int) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	out := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.HasPrefix(out, "-") && strings.Trim(out, "-0.") == "" {
		return out[1:]
	}
	return out
}

// FormatRaw renders an input value with the fewest digits that round-trip.
func FormatRaw(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

func fixed2(v float64) string { return FormatFixed(v, 2) }
