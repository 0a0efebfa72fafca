// Package rerank implements the reasoning core: it combines Features and
// raw backend candidates into scored, flagged, ranked CandidateHits.
// Rerank itself never fails — it operates on data already in memory and
// degrades missing optional fields gracefully.
package rerank

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/markguard/conflict-engine/explain"
	"github.com/markguard/conflict-engine/features"
	"github.com/markguard/conflict-engine/model"
)

// Options controls rerank behavior beyond RerankConfig's scoring weights.
type Options struct {
	// KeepAll, if true, retains zero-score no-flag hits instead of
	// dropping them.
	KeepAll bool
}

// Rerank evaluates flags for every candidate, scores and sorts them, and
// returns the final ordered hit list. Candidate feature evaluation runs
// concurrently via an errgroup, one goroutine per candidate, bounded by
// GOMAXPROCS; flag order within a hit is fixed by the algorithm below, not
// by goroutine scheduling, so output is deterministic regardless of the
// scheduler.
func Rerank(ctx context.Context, query model.SearchQuery, candidates []model.Candidate, cfg model.RerankConfig, opts Options) []model.CandidateHit {
	cfg = cfg.WithDefaults()
	deduped := dedupBySerial(candidates)

	hits := make([]model.CandidateHit, len(deduped))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelism())
	for i, c := range deduped {
		i, c := i, c
		g.Go(func() error {
			hits[i] = scoreCandidate(query, c, cfg)
			return nil
		})
	}
	_ = g.Wait() // scoring is pure and cannot fail

	if !opts.KeepAll {
		hits = filterZero(hits)
	}

	sortHits(hits)
	return hits
}

func scoreCandidate(query model.SearchQuery, c model.Candidate, cfg model.RerankConfig) model.CandidateHit {
	record := c.Record
	normQuery := features.NormalizeText(query.MarkText)
	normRecord := features.NormalizeText(record.MarkText)

	var flags []model.RiskFlag
	var riskScore float64
	exactMatched := false

	// 1. ExactMatch
	if normQuery == normRecord {
		flags = append(flags, model.ExactMatch(cfg.ExactScore))
		riskScore = cfg.ExactScore
		exactMatched = true
	}

	// 2. PhoneticMatch — subsumed by ExactMatch, skipped entirely when it fired.
	if !exactMatched {
		queryPhonetics := features.PhoneticCodes(normQuery)
		recordPhonetics := features.PhoneticCodes(normRecord)
		if alg, code, ok := features.SharedPhonetic(queryPhonetics, recordPhonetics); ok {
			flags = append(flags, model.PhoneticMatch(string(alg), code, cfg.PhoneticWeight))
			riskScore += cfg.PhoneticWeight
		}
	}

	// 3. FuzzyMatch — subsumed by ExactMatch, skipped entirely when it fired.
	if !exactMatched {
		d := features.EditDistance(normQuery, normRecord, cfg.MaxEditDistance)
		if d <= cfg.MaxEditDistance {
			weight := cfg.FuzzyFalloff(d, cfg.MaxEditDistance, cfg.FuzzyWeight)
			flags = append(flags, model.FuzzyMatch(d, weight))
			riskScore += weight
		}
	}

	// 4. ClassOverlap
	if len(query.Classes) > 0 {
		shared := features.ClassOverlap(query.Classes, record.Classes)
		if len(shared) > 0 {
			flags = append(flags, model.ClassOverlapFlag(shared, cfg.ClassWeight))
			if !exactMatched {
				riskScore += cfg.ClassWeight
			}
		}
	}

	// 5. DominantTermMatch — never fires alongside ExactMatch.
	if !exactMatched {
		if term, ok := dominantTermMatch(normQuery, normRecord); ok {
			flags = append(flags, model.DominantTermMatch(term, cfg.DominantWeight))
			riskScore += cfg.DominantWeight
		}
	}

	// FamousMark — hook only, no invented scoring semantics.
	if cfg.FamousMarks != nil {
		if _, famous := cfg.FamousMarks[record.Serial]; famous {
			flags = append(flags, model.FamousMarkFlag(0))
		}
	}

	if !exactMatched {
		riskScore = clamp01(riskScore)
	}

	return model.CandidateHit{
		Record:         record,
		RetrievalScore: c.RetrievalScore,
		RiskScore:      riskScore,
		Flags:          flags,
		Explanations:   explain.ExplainAll(flags, query, record),
	}
}

// dominantTermMatch reports whether either side's dominant term appears as
// a whole token in the other side's normalized text.
func dominantTermMatch(normQuery, normRecord string) (string, bool) {
	if qTerm, ok := features.DominantTerm(normQuery); ok && containsToken(normRecord, qTerm) {
		return qTerm, true
	}
	if rTerm, ok := features.DominantTerm(normRecord); ok && containsToken(normQuery, rTerm) {
		return rTerm, true
	}
	return "", false
}

func containsToken(normalized, term string) bool {
	for _, tok := range features.Tokens(normalized) {
		if tok == term {
			return true
		}
	}
	return false
}

func dedupBySerial(candidates []model.Candidate) []model.Candidate {
	best := make(map[string]model.Candidate, len(candidates))
	order := make([]string, 0, len(candidates))
	for _, c := range candidates {
		existing, ok := best[c.Record.Serial]
		if !ok {
			order = append(order, c.Record.Serial)
			best[c.Record.Serial] = c
			continue
		}
		if c.RetrievalScore > existing.RetrievalScore {
			best[c.Record.Serial] = c
		}
	}
	out := make([]model.Candidate, 0, len(order))
	for _, serial := range order {
		out = append(out, best[serial])
	}
	return out
}

func filterZero(hits []model.CandidateHit) []model.CandidateHit {
	out := hits[:0:0]
	for _, h := range hits {
		if h.RiskScore == 0 && len(h.Flags) == 0 {
			continue
		}
		out = append(out, h)
	}
	return out
}

// sortHits applies the final, only synchronization point: descending
// risk_score, then more flags first, then higher retrieval_score, then
// ascending serial — stable under these keys.
func sortHits(hits []model.CandidateHit) {
	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.RiskScore != b.RiskScore {
			return a.RiskScore > b.RiskScore
		}
		if len(a.Flags) != len(b.Flags) {
			return len(a.Flags) > len(b.Flags)
		}
		if a.RetrievalScore != b.RetrievalScore {
			return a.RetrievalScore > b.RetrievalScore
		}
		return a.Record.Serial < b.Record.Serial
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
