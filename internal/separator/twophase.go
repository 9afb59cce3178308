package separator

import (
	"fmt"
	"math"
)

// TwoPhase is the calculator name of the two-phase engine.
const TwoPhase = "two-phase"

// TwoPhaseStepCount is the fixed length of every two-phase derivation.
const TwoPhaseStepCount = 6

// TwoPhaseInput is the caller-owned input snapshot of the two-phase engine.
type TwoPhaseInput struct {
	GasFlowRate        float64 // [MMscfd]
	OilFlowRate        float64 // [BOPD]
	Pressure           float64 // [psia]
	Temperature        float64 // [°F]
	DropletSize        float64 // [μm] displayed only, not used by the formula chain
	RetentionTime      float64 // [min]
	GasSpecificGravity float64 // [-]
	APIGravity         float64 // [°API]
}

// TwoPhaseSchema lists the two-phase inputs in display order.
var TwoPhaseSchema = Schema[TwoPhaseInput]{
	{Name: "gasFlowRate", Label: "Gas Flow Rate", Unit: "MMscfd", Default: 10,
		Ref: func(in *TwoPhaseInput) *float64 { return &in.GasFlowRate }},
	{Name: "oilFlowRate", Label: "Oil Flow Rate", Unit: "BOPD", Default: 2000,
		Ref: func(in *TwoPhaseInput) *float64 { return &in.OilFlowRate }},
	{Name: "pressure", Label: "Pressure", Unit: "psia", Default: 1000,
		Ref: func(in *TwoPhaseInput) *float64 { return &in.Pressure }},
	{Name: "temperature", Label: "Temperature", Unit: "°F", Default: 60,
		Ref: func(in *TwoPhaseInput) *float64 { return &in.Temperature }},
	{Name: "dropletSize", Label: "Droplet Size", Unit: "μm", Default: 140,
		Ref: func(in *TwoPhaseInput) *float64 { return &in.DropletSize }},
	{Name: "retentionTime", Label: "Retention Time", Unit: "min", Default: 3,
		Ref: func(in *TwoPhaseInput) *float64 { return &in.RetentionTime }},
	{Name: "specificGravity", Label: "Gas Specific Gravity", Unit: "", Default: 0.6,
		Ref: func(in *TwoPhaseInput) *float64 { return &in.GasSpecificGravity }},
	{Name: "apiGravity", Label: "Oil API Gravity", Unit: "°API", Default: 40,
		Ref: func(in *TwoPhaseInput) *float64 { return &in.APIGravity }},
}

// ComputeTwoPhase sizes a two-phase separator from liquid density through
// seam-to-seam length. Invalid arithmetic is not guarded: NaN and ±Inf flow
// through to the later steps and their narratives.
func ComputeTwoPhase(in TwoPhaseInput) Calculation {
	d := newDerivation(TwoPhaseStepCount)
	raw := FormatRaw

	rhoL := d.add(Step{
		Title:        "Calculate Liquid Density (ρl)",
		Symbol:       "ρl",
		Formula:      "ρl = (141.5 / (131.5 + API)) × 62.4",
		Substitution: fmt.Sprintf("ρl = (141.5 / (131.5 + %s)) × 62.4", raw(in.APIGravity)),
		Value:        (APINumerator / (APIOffset + in.APIGravity)) * WaterDensity,
		Unit:         "lb/ft³",
		Decimals:     2,
	})

	rhoG := d.add(Step{
		Title:   "Calculate Gas Density (ρg)",
		Symbol:  "ρg",
		Formula: "ρg = (2.7 × SG × P) / (0.84 × T)",
		Substitution: fmt.Sprintf("ρg = (2.7 × %s × %s) / (0.84 × (%s + 460))",
			raw(in.GasSpecificGravity), raw(in.Pressure), raw(in.Temperature)),
		Value:    (GasDensityCoef * in.GasSpecificGravity * in.Pressure) / (ZFactor * (in.Temperature + RankineOffset)),
		Unit:     "lb/ft³",
		Decimals: 2,
	})

	deltaRho := rhoL - rhoG
	cd := TwoPhaseDragCoefficient

	d.add(Step{
		Title:        "Calculate Terminal Velocity (Vt)",
		Symbol:       "Vt",
		Formula:      "Vt = √(Δρ / (ρg × CD))",
		Substitution: fmt.Sprintf("Vt = √((%s) / (%s × %s))", fixed2(deltaRho), fixed2(rhoG), raw(cd)),
		Value:        math.Sqrt(deltaRho / (rhoG * cd)),
		Unit:         "ft/s",
		Decimals:     2,
	})

	dGas := d.add(Step{
		Title:   "Calculate Gas Capacity Constraint Diameter (d)",
		Symbol:  "d",
		Formula: "d = √((5.040 × Z × Qg × 10⁶) / (√CD × P × Δρ))",
		Substitution: fmt.Sprintf("d = √((5.040 × 0.84 × %s × 10⁶) / (√%s × %s × %s))",
			raw(in.GasFlowRate), raw(cd), raw(in.Pressure), fixed2(deltaRho)),
		Value:    math.Sqrt((GasCapacityCoef * ZFactor * in.GasFlowRate * MMscfd) / (math.Sqrt(cd) * in.Pressure * deltaRho)),
		Unit:     "in",
		Decimals: 2,
	})

	diameterFt := dGas / InchesPerFoot
	h := d.add(Step{
		Title:   "Calculate Liquid Capacity Constraint Height (h)",
		Symbol:  "h",
		Formula: "h = (t × Qo) / (0.12 × d²)",
		Substitution: fmt.Sprintf("h = (%s × %s) / (0.12 × (%s ft)²)",
			raw(in.RetentionTime), raw(in.OilFlowRate), fixed2(diameterFt)),
		Value:    (in.RetentionTime * in.OilFlowRate) / (RetentionCoef * diameterFt * diameterFt),
		Unit:     "in",
		Decimals: 2,
	})

	d.add(Step{
		Title:        "Calculate Seam-to-Seam Length (Lss)",
		Symbol:       "Lss",
		Formula:      "Lss = h + 76",
		Substitution: fmt.Sprintf("Lss = %s + 76", fixed2(h)),
		Value:        h + HeadAllowance,
		Unit:         "in",
		Decimals:     2,
	})

	return d.calculation(TwoPhase)
}
