package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/markguard/conflict-engine/internal/errors"
)

const dateLayout = "2006-01-02"

// UnmarshalJSON implements flexible Status decoding: any case, via
// ParseStatus.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}

// MarshalJSON emits Status as its string value.
func (s Status) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(string(s))
}

// rawRecord mirrors the upstream ingestion wire shape: unknown keys are
// ignored by sonic's default decoding, missing optional keys decode to
// their zero value.
type rawRecord struct {
	Serial           string `json:"serial"`
	MarkText         string `json:"mark_text"`
	Status           string `json:"status"`
	Classes          []int  `json:"classes"`
	Owner            string `json:"owner"`
	FilingDate       string `json:"filing_date"`
	RegistrationDate string `json:"registration_date"`
	GoodsServices    string `json:"goods_services"`
}

// ParseRecord decodes one upstream JSON record. It fails only when the
// JSON is malformed or serial or mark_text is empty; all other fields
// degrade gracefully — an
// unparsable date is dropped rather than rejected, an unrecognized status
// becomes StatusUnknown.
func ParseRecord(data []byte) (TrademarkRecord, error) {
	var raw rawRecord
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return TrademarkRecord{}, errors.Query(errors.ErrCodeQueryUnsupported, "malformed record JSON: "+err.Error())
	}

	if strings.TrimSpace(raw.Serial) == "" {
		return TrademarkRecord{}, errors.Query(errors.ErrCodeQueryEmpty, "record serial must be non-empty")
	}
	if strings.TrimSpace(raw.MarkText) == "" {
		return TrademarkRecord{}, errors.Query(errors.ErrCodeQueryEmpty, "record mark_text must be non-empty")
	}

	rec := TrademarkRecord{
		Serial:        raw.Serial,
		MarkText:      raw.MarkText,
		Status:        ParseStatus(raw.Status),
		Classes:       raw.Classes,
		Owner:         raw.Owner,
		GoodsServices: raw.GoodsServices,
	}
	rec.FilingDate = parseOptionalDate(raw.FilingDate)
	rec.RegistrationDate = parseOptionalDate(raw.RegistrationDate)
	rec.Canonicalize()
	return rec, nil
}

func parseOptionalDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

// ParseClassesField decodes a backend-reported classes column that may be
// either a JSON array of ints or a comma-separated string.
func ParseClassesField(raw json.RawMessage) []int {
	var asInts []int
	if err := sonic.Unmarshal(raw, &asInts); err == nil {
		return asInts
	}

	var asString string
	if err := sonic.Unmarshal(raw, &asString); err != nil {
		return nil
	}
	parts := strings.Split(asString, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if n, err := strconv.Atoi(p); err == nil {
			out = append(out, n)
		}
	}
	return out
}
