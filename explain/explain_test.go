package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markguard/conflict-engine/model"
)

var rec = model.TrademarkRecord{Serial: "1", MarkText: "NIKE", Classes: []int{25}}
var query = model.SearchQuery{MarkText: "NIKE", Classes: []int{25}}

func TestExplain_ExactMatch(t *testing.T) {
	e := Explain(model.ExactMatch(1.0), query, rec)
	assert.Equal(t, "Exact match", e.Summary)
	assert.Contains(t, e.Detail, "NIKE")
	assert.Equal(t, 1.0, e.Severity)
}

func TestExplain_PhoneticMatch_CitesAlgorithmAndCode(t *testing.T) {
	e := Explain(model.PhoneticMatch("soundex", "N200", 0.6), query, rec)
	assert.Contains(t, e.Detail, "soundex")
	assert.Len(t, e.Evidence, 2)
}

func TestExplain_FuzzyMatch_CitesDistance(t *testing.T) {
	e := Explain(model.FuzzyMatch(1, 0.4), query, rec)
	assert.Contains(t, e.Detail, "1")
	assert.Equal(t, "edit_distance", e.Evidence[0].Label)
}

func TestExplain_ClassOverlap_CitesSharedClasses(t *testing.T) {
	e := Explain(model.ClassOverlapFlag([]int{25}, 0.3), query, rec)
	assert.Contains(t, e.Detail, "25")
}

func TestExplain_DominantTermMatch_CitesTerm(t *testing.T) {
	e := Explain(model.DominantTermMatch("APPLE", 0.4), query, rec)
	assert.Contains(t, e.Detail, "APPLE")
}

func TestExplain_DegradesGracefullyWhenFieldsMissing(t *testing.T) {
	e := Explain(model.RiskFlag{Kind: model.FlagPhoneticMatch, Weight: 0.5}, query, rec)
	assert.NotEmpty(t, e.Detail)
	assert.Nil(t, e.Evidence)
}

func TestExplain_SeverityClamped(t *testing.T) {
	e := Explain(model.RiskFlag{Kind: model.FlagFuzzyMatch, Weight: 1.5}, query, rec)
	assert.Equal(t, 1.0, e.Severity)
}

func TestExplainAll_ParallelToFlags(t *testing.T) {
	flags := []model.RiskFlag{model.ExactMatch(1.0), model.ClassOverlapFlag([]int{25}, 0.3)}
	explanations := ExplainAll(flags, query, rec)
	assert.Len(t, explanations, len(flags))
}
