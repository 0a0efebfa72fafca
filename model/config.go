package model

// PhoneticMode selects whether phonetic codes are computed over the
// concatenated mark text or per individual token. Left configurable rather
// than silently resolved.
type PhoneticMode string

const (
	// PhoneticWhole applies each algorithm to all alphabetic tokens
	// concatenated together, spaces removed. This is the default.
	PhoneticWhole PhoneticMode = "whole"
	// PhoneticPerToken applies each algorithm independently to every
	// token; a match on any token pair counts. Exposed as a documented
	// limitation — not implemented beyond this enum value.
	PhoneticPerToken PhoneticMode = "per_token"
)

// FuzzyFalloff computes the weight contribution of a FuzzyMatch flag given
// its edit distance and the configured ceiling. Callers may supply their
// own curve; FuzzyFalloffLinear is the default.
type FuzzyFalloff func(distance, maxEditDistance int, fuzzyWeight float64) float64

// FuzzyFalloffLinear decays linearly from fuzzy_weight at distance 0 to
// zero at maxEditDistance+1.
func FuzzyFalloffLinear(distance, maxEditDistance int, fuzzyWeight float64) float64 {
	if maxEditDistance <= 0 {
		return 0
	}
	frac := 1 - float64(distance)/float64(maxEditDistance+1)
	if frac < 0 {
		frac = 0
	}
	return fuzzyWeight * frac
}

// RerankConfig tunes the rerank algorithm's flag weights and thresholds.
// Zero value is invalid; use DefaultRerankConfig.
type RerankConfig struct {
	PhoneticWeight  float64 `json:"phonetic_weight" yaml:"phonetic_weight"`
	FuzzyWeight     float64 `json:"fuzzy_weight" yaml:"fuzzy_weight"`
	ClassWeight     float64 `json:"class_weight" yaml:"class_weight"`
	DominantWeight  float64 `json:"dominant_weight" yaml:"dominant_weight"`
	ExactScore      float64 `json:"exact_score" yaml:"exact_score"`
	MaxEditDistance int     `json:"max_edit_distance" yaml:"max_edit_distance"`

	// FuzzyFalloff computes a FuzzyMatch flag's weight from its distance.
	// Not serialized; callers wire FuzzyFalloffLinear or their own curve
	// after loading the numeric fields from JSON/YAML.
	FuzzyFalloff FuzzyFalloff `json:"-" yaml:"-"`

	// FamousMarks is an optional caller-supplied set of serials. Rerank
	// raises the FamousMark flag when a candidate's serial is a member; no
	// further scoring semantics are invented here.
	FamousMarks map[string]struct{} `json:"-" yaml:"-"`

	// PhoneticMode selects whole-string vs per-token phonetic matching.
	// Defaults to PhoneticWhole.
	PhoneticMode PhoneticMode `json:"phonetic_mode,omitempty" yaml:"phonetic_mode,omitempty"`
}

// DefaultRerankConfig returns the engine's baseline tuning.
func DefaultRerankConfig() RerankConfig {
	return RerankConfig{
		PhoneticWeight:  0.3,
		FuzzyWeight:     0.3,
		ClassWeight:     0.2,
		DominantWeight:  0.6,
		ExactScore:      1.0,
		MaxEditDistance: 3,
		FuzzyFalloff:    FuzzyFalloffLinear,
	}
}

// WithDefaults fills any zero-valued numeric field with DefaultRerankConfig's
// value and, if FuzzyFalloff is nil, installs FuzzyFalloffLinear. This lets
// callers load a partial config (e.g. from YAML) without fully restating it.
func (c RerankConfig) WithDefaults() RerankConfig {
	d := DefaultRerankConfig()
	if c.PhoneticWeight == 0 {
		c.PhoneticWeight = d.PhoneticWeight
	}
	if c.FuzzyWeight == 0 {
		c.FuzzyWeight = d.FuzzyWeight
	}
	if c.ClassWeight == 0 {
		c.ClassWeight = d.ClassWeight
	}
	if c.DominantWeight == 0 {
		c.DominantWeight = d.DominantWeight
	}
	if c.ExactScore == 0 {
		c.ExactScore = d.ExactScore
	}
	if c.MaxEditDistance == 0 {
		c.MaxEditDistance = d.MaxEditDistance
	}
	if c.FuzzyFalloff == nil {
		c.FuzzyFalloff = d.FuzzyFalloff
	}
	if c.PhoneticMode == "" {
		c.PhoneticMode = PhoneticWhole
	}
	return c
}
