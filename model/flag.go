package model

// FlagKind discriminates the RiskFlag tagged variant.
type FlagKind string

const (
	FlagExactMatch        FlagKind = "ExactMatch"
	FlagPhoneticMatch     FlagKind = "PhoneticMatch"
	FlagFuzzyMatch        FlagKind = "FuzzyMatch"
	FlagClassOverlap      FlagKind = "ClassOverlap"
	FlagDominantTermMatch FlagKind = "DominantTermMatch"
	FlagFamousMark        FlagKind = "FamousMark"
)

// RiskFlag is a single signal raised against a candidate during reranking.
// Only the fields relevant to Kind are populated; this mirrors a tagged
// union using a discriminator field, since Go has no sum types.
type RiskFlag struct {
	Kind FlagKind `json:"kind"`

	// PhoneticMatch fields.
	Algorithm string `json:"algorithm,omitempty"`
	Code      string `json:"code,omitempty"`

	// FuzzyMatch fields.
	Distance int `json:"distance,omitempty"`

	// ClassOverlap fields.
	Classes []int `json:"classes,omitempty"`

	// DominantTermMatch fields.
	Term string `json:"term,omitempty"`

	// Weight is the contribution this flag makes to the candidate's
	// risk_score, resolved from RerankConfig at evaluation time.
	Weight float64 `json:"weight"`
}

// ExactMatch builds the ExactMatch flag.
func ExactMatch(weight float64) RiskFlag {
	return RiskFlag{Kind: FlagExactMatch, Weight: weight}
}

// PhoneticMatch builds the PhoneticMatch flag.
func PhoneticMatch(algorithm, code string, weight float64) RiskFlag {
	return RiskFlag{Kind: FlagPhoneticMatch, Algorithm: algorithm, Code: code, Weight: weight}
}

// FuzzyMatch builds the FuzzyMatch flag.
func FuzzyMatch(distance int, weight float64) RiskFlag {
	return RiskFlag{Kind: FlagFuzzyMatch, Distance: distance, Weight: weight}
}

// ClassOverlapFlag builds the ClassOverlap flag.
func ClassOverlapFlag(classes []int, weight float64) RiskFlag {
	return RiskFlag{Kind: FlagClassOverlap, Classes: classes, Weight: weight}
}

// DominantTermMatch builds the DominantTermMatch flag.
func DominantTermMatch(term string, weight float64) RiskFlag {
	return RiskFlag{Kind: FlagDominantTermMatch, Term: term, Weight: weight}
}

// FamousMarkFlag builds the FamousMark flag. This is a hook only — no
// famous-mark scoring semantics are implemented. Rerank raises it with
// weight 0 for serials listed in RerankConfig.FamousMarks.
func FamousMarkFlag(weight float64) RiskFlag {
	return RiskFlag{Kind: FlagFamousMark, Weight: weight}
}
