// Package separator implements the two-phase and three-phase separator sizing
// engines. Each engine is a pure function from a typed input record to an
// ordered list of derivation steps.
package separator

// Fixed physical constants shared by the sizing formulas. None of these are
// configurable; a formula revision changes them here.
const (
	WaterDensity   = 62.4  // [lb/ft³] fresh water at standard conditions
	RankineOffset  = 460.0 // [°R] added to °F
	APINumerator   = 141.5 // [-] SG = 141.5 / (131.5 + API)
	APIOffset      = 131.5 // [-]
	GasDensityCoef = 2.7   // [-] ρg = 2.7 × SG × P / (Z × T)
	ZFactor        = 0.84  // [-] gas compressibility, fixed

	TwoPhaseDragCoefficient = 0.34  // [-] Cd for terminal velocity
	GasCapacityCoef         = 5.040 // [-]
	MMscfd                  = 1e6   // [scf/d] per MMscfd

	ThreePhaseDragCoefficient = 2.01   // [-] Cd for liquid droplets in gas
	SettlingCoef              = 6690.0 // [-] droplet settling constant
	AssumedGasDensity         = 0.5    // [lb/ft³] ρg* for the gas-phase correction
	AssumedLiquidDensity      = 54.7   // [lb/ft³] ρl* for the gas-phase correction
	DropletSizeScale          = 1e6    // [μm²] droplet size normalisation
	RetentionCoef             = 0.12   // [-] h = t × Q / (0.12 × d²)
	InchesPerFoot             = 12.0   // [in/ft]

	// HeadAllowance is added to the liquid height to obtain the
	// seam-to-seam length. It is applied unconditionally.
	HeadAllowance = 76.0 // [in]

	// HeadAllowanceMinDiameter is the vessel diameter above which
	// HeadAllowance is documented as valid. The engines do not branch on it.
	HeadAllowanceMinDiameter = 36.0 // [in]
)
