package separator

import (
	"math"
	"testing"
)

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{51.48454810495627, 2, "51.48"},
		{0.19400000000000006, 3, "0.194"},
		{-0.001, 2, "0.00"},
		{math.Copysign(0, -1), 2, "0.00"},
		{-1.5, 1, "-1.5"},
		{math.NaN(), 2, "NaN"},
		{math.Inf(1), 2, "Infinity"},
		{math.Inf(-1), 3, "-Infinity"},
	}

	for _, tc := range tests {
		if got := FormatFixed(tc.v, tc.decimals); got != tc.want {
			t.Errorf("FormatFixed(%g, %d): expected %q, got %q", tc.v, tc.decimals, tc.want, got)
		}
	}
}

func TestFormatRaw(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{1000, "1000"},
		{0.6, "0.6"},
		{0.876, "0.876"},
		{1e6, "1000000"},
		{math.Copysign(0, -1), "0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
	}

	for _, tc := range tests {
		if got := FormatRaw(tc.v); got != tc.want {
			t.Errorf("FormatRaw(%g): expected %q, got %q", tc.v, tc.want, got)
		}
	}
}

func TestStepNarrativeWithoutUnitOrFormula(t *testing.T) {
	s := Step{Label: "Step 8", Title: "Slenderness ratio", Symbol: "SR", Value: 3.14159, Decimals: 2}

	want := "**Step 8:** Slenderness ratio:\nSR = 3.14"
	if got := s.Narrative(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCalculationMarkdownNumbersAndIndentsSteps(t *testing.T) {
	calc := Calculation{Steps: []Step{
		{Label: "Step 1", Title: "A", Symbol: "a", Formula: "a = 1", Value: 1, Decimals: 0},
		{Label: "Step 2", Title: "B", Symbol: "b", Value: 2.5, Unit: "in", Decimals: 1},
	}}

	want := "1. **Step 1:** A:\n   Formula: a = 1\n   a = 1\n\n2. **Step 2:** B:\n   b = 2.5 in"
	if got := calc.Markdown(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if got := calc.Last().Symbol; got != "b" {
		t.Fatalf("expected last step %q, got %q", "b", got)
	}
	if got := (Calculation{}).Last(); got.Label != "" {
		t.Fatalf("expected zero step for empty calculation, got %+v", got)
	}
}

func TestSchemaDefaultsLookupAndValues(t *testing.T) {
	in := TwoPhaseSchema.Defaults()
	want := TwoPhaseInput{
		GasFlowRate:        10,
		OilFlowRate:        2000,
		Pressure:           1000,
		Temperature:        60,
		DropletSize:        140,
		RetentionTime:      3,
		GasSpecificGravity: 0.6,
		APIGravity:         40,
	}
	if in != want {
		t.Fatalf("expected defaults %+v, got %+v", want, in)
	}

	f, ok := ThreePhaseSchema.Lookup("waterDropletSize")
	if !ok {
		t.Fatal("expected waterDropletSize field")
	}
	var tp ThreePhaseInput
	*f.Ref(&tp) = 321
	if tp.WaterDropletSize != 321 {
		t.Fatalf("expected Ref to bind WaterDropletSize, got %+v", tp)
	}

	if _, ok := ThreePhaseSchema.Lookup("viscosity"); ok {
		t.Fatal("did not expect a viscosity field")
	}

	names := ThreePhaseSchema.Names()
	if len(names) != 15 || names[0] != "oilFlowRate" || names[14] != "oilDropletSize" {
		t.Fatalf("unexpected three-phase field order: %v", names)
	}

	values := TwoPhaseSchema.Values(in)
	if len(values) != len(TwoPhaseSchema) || values["apiGravity"] != 40 {
		t.Fatalf("unexpected values: %v", values)
	}
}
