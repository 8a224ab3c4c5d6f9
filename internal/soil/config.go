package soil

// Config carries the numeric constants the calculators accept from the
// caller. Zero values fall back to the documented defaults, so an empty
// Config is always usable.
type Config struct {
	// SafetyFactor divides ultimate bearing capacity. Default 3.0.
	SafetyFactor float64 `json:"safety_factor,omitempty"`

	// LiquefactionThreshold is the CRR/CSR cutoff below which a layer is
	// flagged susceptible. Default 1.0.
	LiquefactionThreshold float64 `json:"liquefaction_threshold,omitempty"`

	// IntegrationSteps is the fixed quadrature resolution for the
	// consolidation settlement integral. Default 50.
	IntegrationSteps int `json:"integration_steps,omitempty"`
}

const (
	DefaultSafetyFactor          = 3.0
	DefaultLiquefactionThreshold = 1.0
	DefaultIntegrationSteps      = 50
)

// WithDefaults returns a copy with unset fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.SafetyFactor <= 0 {
		c.SafetyFactor = DefaultSafetyFactor
	}
	if c.LiquefactionThreshold <= 0 {
		c.LiquefactionThreshold = DefaultLiquefactionThreshold
	}
	if c.IntegrationSteps <= 0 {
		c.IntegrationSteps = DefaultIntegrationSteps
	}
	return c
}
