package separator

import (
	"fmt"
	"math"
)

// ThreePhase is the calculator name of the three-phase engine.
const ThreePhase = "three-phase"

// ThreePhaseStepCount is the fixed length of every three-phase derivation.
const ThreePhaseStepCount = 9

// ThreePhaseInput is the caller-owned input snapshot of the three-phase engine.
// Temperature, GasSG and InterfacialTension are part of the record but the
// sizing chain does not consume them.
type ThreePhaseInput struct {
	OilFlowRate        float64 // [BOPD]
	WaterFlowRate      float64 // [BWPD]
	GasFlowRate        float64 // [MMscfd]
	Pressure           float64 // [psia]
	Temperature        float64 // [°F]
	OilAPI             float64 // [°API]
	OilSG              float64 // [-]
	WaterSG            float64 // [-]
	GasSG              float64 // [-]
	OilRetentionTime   float64 // [min]
	WaterRetentionTime float64 // [min]
	InterfacialTension float64 // [lb/ft³]
	LiquidDropletSize  float64 // [μm] liquid droplets settling out of gas
	WaterDropletSize   float64 // [μm] water droplets settling out of oil
	OilDropletSize     float64 // [μm] oil droplets rising out of water
}

// ThreePhaseSchema lists the three-phase inputs in display order.
var ThreePhaseSchema = Schema[ThreePhaseInput]{
	{Name: "oilFlowRate", Label: "Oil Flow Rate", Unit: "BOPD", Default: 5000,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.OilFlowRate }},
	{Name: "waterFlowRate", Label: "Water Flow Rate", Unit: "BWPD", Default: 3000,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.WaterFlowRate }},
	{Name: "gasFlowRate", Label: "Gas Flow Rate", Unit: "MMscfd", Default: 5,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.GasFlowRate }},
	{Name: "pressure", Label: "Pressure", Unit: "psia", Default: 100,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.Pressure }},
	{Name: "temperature", Label: "Temperature", Unit: "°F", Default: 90,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.Temperature }},
	{Name: "oilAPI", Label: "Oil API", Unit: "°API", Default: 30,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.OilAPI }},
	{Name: "oilSG", Label: "Oil SG", Unit: "", Default: 0.876,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.OilSG }},
	{Name: "waterSG", Label: "Water SG", Unit: "", Default: 1.07,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.WaterSG }},
	{Name: "gasSG", Label: "Gas SG", Unit: "", Default: 0.6,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.GasSG }},
	{Name: "oilRetentionTime", Label: "Oil Retention Time", Unit: "min", Default: 10,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.OilRetentionTime }},
	{Name: "waterRetentionTime", Label: "Water Retention Time", Unit: "min", Default: 10,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.WaterRetentionTime }},
	{Name: "interfacialTension", Label: "Interfacial Tension", Unit: "lb/ft³", Default: 0.3,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.InterfacialTension }},
	{Name: "liquidDropletSize", Label: "Liquid Droplet Size", Unit: "μm", Default: 100,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.LiquidDropletSize }},
	{Name: "waterDropletSize", Label: "Water Droplet Size", Unit: "μm", Default: 500,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.WaterDropletSize }},
	{Name: "oilDropletSize", Label: "Oil Droplet Size", Unit: "μm", Default: 200,
		Ref: func(in *ThreePhaseInput) *float64 { return &in.OilDropletSize }},
}

// gasPhaseCorrection is Φ = √((ρg*/(ρl* − ρg*)) × (Cd / dm)), the drag and
// density correction applied to the liquid-in-gas diameter.
func gasPhaseCorrection(dropletSize float64) float64 {
	densityRatio := AssumedGasDensity / (AssumedLiquidDensity - AssumedGasDensity)
	return math.Sqrt(densityRatio * (ThreePhaseDragCoefficient / dropletSize))
}

// ComputeThreePhase sizes a three-phase separator: droplet-settling diameters
// for each phase, the governing diameter, the oil+water height, the
// seam-to-seam length and the slenderness ratio. The 76 in head allowance is
// applied whatever the governing diameter, including at or below
// HeadAllowanceMinDiameter.
func ComputeThreePhase(in ThreePhaseInput) Calculation {
	d := newDerivation(ThreePhaseStepCount)
	raw := FormatRaw

	// Step 1 restates the oil SG implied by API gravity; ΔSG uses the
	// supplied OilSG.
	d.add(Step{
		Title:        "Oil specific gravity from API gravity (SGo)",
		Symbol:       "SGo",
		Formula:      "SGo = 141.5 / (API + 131.5)",
		Substitution: fmt.Sprintf("SGo = 141.5 / (%s + 131.5)", raw(in.OilAPI)),
		Value:        APINumerator / (in.OilAPI + APIOffset),
		Decimals:     3,
	})

	deltaSG := d.add(Step{
		Title:        "Difference in specific gravities (ΔSG)",
		Symbol:       "ΔSG",
		Formula:      "ΔSG = SGw - SGo",
		Substitution: fmt.Sprintf("ΔSG = %s - %s", raw(in.WaterSG), raw(in.OilSG)),
		Value:        in.WaterSG - in.OilSG,
		Decimals:     3,
	})

	phi := gasPhaseCorrection(in.LiquidDropletSize)
	d2 := d.add(Step{
		Title:   "Minimum diameter for liquid droplets in gas phase (d2)",
		Symbol:  "d2",
		Formula: "d2 = √((6690 × Qg × dm² × Φ) / (P × ΔSG)), Φ = √((ρg / (ρl - ρg)) × (CD / dm))",
		Substitution: fmt.Sprintf("d2 = √((6690 × %s × %s² × %s) / (%s × %s)), Φ = √((%s / (%s - %s)) × (%s / %s))",
			raw(in.GasFlowRate), raw(in.LiquidDropletSize), FormatFixed(phi, 4), raw(in.Pressure), FormatFixed(deltaSG, 3),
			raw(AssumedGasDensity), raw(AssumedLiquidDensity), raw(AssumedGasDensity), raw(ThreePhaseDragCoefficient), raw(in.LiquidDropletSize)),
		Value:    math.Sqrt((SettlingCoef * in.GasFlowRate * in.LiquidDropletSize * in.LiquidDropletSize * phi) / (in.Pressure * deltaSG)),
		Unit:     "in",
		Decimals: 2,
	})

	d3 := d.add(Step{
		Title:   "Minimum diameter for water droplets in oil phase (d3)",
		Symbol:  "d3",
		Formula: "d3 = √((6690 × Qg × dm²) / (ΔSG × 10⁶))",
		Substitution: fmt.Sprintf("d3 = √((6690 × %s × %s²) / (%s × 10⁶))",
			raw(in.GasFlowRate), raw(in.WaterDropletSize), FormatFixed(deltaSG, 3)),
		Value:    math.Sqrt((SettlingCoef * in.GasFlowRate * in.WaterDropletSize * in.WaterDropletSize) / (deltaSG * DropletSizeScale)),
		Unit:     "in",
		Decimals: 2,
	})

	d4 := d.add(Step{
		Title:   "Minimum diameter for oil droplets in water phase (d4)",
		Symbol:  "d4",
		Formula: "d4 = √((6690 × Qw × dm²) / (ΔSG × 10⁶))",
		Substitution: fmt.Sprintf("d4 = √((6690 × %s × %s²) / (%s × 10⁶))",
			raw(in.WaterFlowRate), raw(in.OilDropletSize), FormatFixed(deltaSG, 3)),
		Value:    math.Sqrt((SettlingCoef * in.WaterFlowRate * in.OilDropletSize * in.OilDropletSize) / (deltaSG * DropletSizeScale)),
		Unit:     "in",
		Decimals: 2,
	})

	dMin := d.add(Step{
		Title:        "Largest diameter (dMin)",
		Symbol:       "dMin",
		Formula:      "dMin = max(d2, d3, d4)",
		Substitution: fmt.Sprintf("dMin = max(%s, %s, %s)", fixed2(d2), fixed2(d3), fixed2(d4)),
		Value:        math.Max(d2, math.Max(d3, d4)),
		Unit:         "in",
		Decimals:     2,
	})

	hOW := d.add(Step{
		Title:   "Height for oil and water (hOW)",
		Symbol:  "hOW",
		Formula: "hOW = (to × Qo + tw × Qw) / (0.12 × dMin²)",
		Substitution: fmt.Sprintf("hOW = (%s × %s + %s × %s) / (0.12 × %s²)",
			raw(in.OilRetentionTime), raw(in.OilFlowRate), raw(in.WaterRetentionTime), raw(in.WaterFlowRate), fixed2(dMin)),
		Value:    (in.OilRetentionTime*in.OilFlowRate + in.WaterRetentionTime*in.WaterFlowRate) / (RetentionCoef * dMin * dMin),
		Unit:     "in",
		Decimals: 2,
	})

	lss := d.add(Step{
		Title:        "Seam-to-seam length (Lss)",
		Symbol:       "Lss",
		Formula:      "Lss = hOW + 76",
		Substitution: fmt.Sprintf("Lss = %s + 76", fixed2(hOW)),
		Value:        hOW + HeadAllowance,
		Unit:         "in",
		Decimals:     2,
	})

	lssFt := lss / InchesPerFoot
	d.add(Step{
		Title:        "Slenderness ratio (SR)",
		Symbol:       "SR",
		Formula:      "SR = (12 × Lss) / dMin",
		Substitution: fmt.Sprintf("SR = (12 × %s ft) / %s", fixed2(lssFt), fixed2(dMin)),
		Value:        (InchesPerFoot * lssFt) / dMin,
		Decimals:     2,
	})

	return d.calculation(ThreePhase)
}
