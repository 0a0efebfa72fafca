// Package explain maps a RiskFlag to a structured, human-readable
// Explanation. The mapping is pure and total: it never fails, and a
// missing optional field degrades to a generic phrase rather than an
// error.
package explain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/markguard/conflict-engine/model"
)

// summaries is the fixed summary-string table per RiskFlag variant.
var summaries = map[model.FlagKind]string{
	model.FlagExactMatch:        "Exact match",
	model.FlagPhoneticMatch:     "Sounds alike",
	model.FlagFuzzyMatch:        "Close spelling",
	model.FlagClassOverlap:      "Shared class",
	model.FlagDominantTermMatch: "Shared dominant term",
	model.FlagFamousMark:        "Famous mark",
}

// Explain maps one flag raised against record (in the context of query)
// to its Explanation.
func Explain(flag model.RiskFlag, query model.SearchQuery, record model.TrademarkRecord) model.Explanation {
	summary, ok := summaries[flag.Kind]
	if !ok {
		summary = "Potential conflict"
	}

	detail, evidence := detailAndEvidence(flag, query, record)

	return model.Explanation{
		Summary:  summary,
		Detail:   detail,
		Severity: clampSeverity(flag.Weight),
		Evidence: evidence,
	}
}

// ExplainAll maps flags in order, producing the explanations slice that
// runs parallel to CandidateHit.Flags.
func ExplainAll(flags []model.RiskFlag, query model.SearchQuery, record model.TrademarkRecord) []model.Explanation {
	out := make([]model.Explanation, len(flags))
	for i, f := range flags {
		out[i] = Explain(f, query, record)
	}
	return out
}

func detailAndEvidence(flag model.RiskFlag, query model.SearchQuery, record model.TrademarkRecord) (string, []model.EvidenceItem) {
	switch flag.Kind {
	case model.FlagExactMatch:
		return fmt.Sprintf("%q is an exact match for the proposed mark.", record.MarkText), nil

	case model.FlagPhoneticMatch:
		if flag.Algorithm == "" || flag.Code == "" {
			return fmt.Sprintf("%q sounds like the proposed mark.", record.MarkText), nil
		}
		return fmt.Sprintf("%q shares a %s phonetic code with the proposed mark.", record.MarkText, flag.Algorithm),
			[]model.EvidenceItem{
				{Label: "algorithm", Value: flag.Algorithm},
				{Label: "code", Value: flag.Code},
			}

	case model.FlagFuzzyMatch:
		return fmt.Sprintf("%q differs from the proposed mark by an edit distance of %d.", record.MarkText, flag.Distance),
			[]model.EvidenceItem{{Label: "edit_distance", Value: strconv.Itoa(flag.Distance)}}

	case model.FlagClassOverlap:
		if len(flag.Classes) == 0 {
			return fmt.Sprintf("%q shares a goods/services class with the proposed mark.", record.MarkText), nil
		}
		codes := make([]string, len(flag.Classes))
		for i, c := range flag.Classes {
			codes[i] = strconv.Itoa(c)
		}
		return fmt.Sprintf("%q is registered in the same class(es) as the proposed mark: %s.", record.MarkText, strings.Join(codes, ", ")),
			[]model.EvidenceItem{{Label: "shared_classes", Value: strings.Join(codes, ", ")}}

	case model.FlagDominantTermMatch:
		if flag.Term == "" {
			return fmt.Sprintf("%q shares a dominant term with the proposed mark.", record.MarkText), nil
		}
		return fmt.Sprintf("%q shares the dominant term %q with the proposed mark.", record.MarkText, flag.Term),
			[]model.EvidenceItem{{Label: "term", Value: flag.Term}}

	case model.FlagFamousMark:
		return fmt.Sprintf("%q belongs to a curated famous-marks list.", record.MarkText), nil

	default:
		return fmt.Sprintf("%q may conflict with the proposed mark.", record.MarkText), nil
	}
}

func clampSeverity(w float64) float64 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}
