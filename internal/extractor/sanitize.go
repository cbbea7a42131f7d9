package extractor

import (
	"slices"

	"lead-insights-go/internal/types"
)

// rawInsights mirrors the expected response shape but keeps every field
// untyped: the model output is JSON-shaped free text, not a trusted record.
type rawInsights struct {
	AskingPrice            any `json:"asking_price"`
	WillingnessToNegotiate any `json:"willingness_to_negotiate"`
	HandoverDate           any `json:"handover_date"`
	CarCondition           any `json:"car_condition"`
	NumOwners              any `json:"num_owners"`
	Sentiment              any `json:"sentiment"`
	CallOutcome            any `json:"call_outcome"`
	KeyNotes               any `json:"key_notes"`
}

// Sanitize validates every field independently and falls back to a per-field
// default on the wrong type or an out-of-vocabulary value, so one malformed
// field never invalidates the rest of the record. Total: never fails.
func Sanitize(raw rawInsights) types.ExtractedInsights {
	out := types.ExtractedInsights{
		WillingnessToNegotiate: enumOr(raw.WillingnessToNegotiate, types.NegotiationValues, "unclear"),
		HandoverDate:           enumOr(raw.HandoverDate, types.HandoverValues, "unclear"),
		CarCondition:           enumOr(raw.CarCondition, types.ConditionValues, "unclear"),
		Sentiment:              enumOr(raw.Sentiment, types.SentimentValues, "neutral"),
		CallOutcome:            enumOr(raw.CallOutcome, types.OutcomeValues, "failed"),
		KeyNotes:               "Unable to extract notes",
	}

	if price, ok := asNumber(raw.AskingPrice); ok {
		out.AskingPrice = &price
	}
	if owners, ok := asNumber(raw.NumOwners); ok {
		n := int(owners)
		out.NumOwners = &n
	}
	if notes, ok := raw.KeyNotes.(string); ok {
		out.KeyNotes = notes
	}
	return out
}

func enumOr(v any, allowed []string, fallback string) string {
	if s, ok := v.(string); ok && slices.Contains(allowed, s) {
		return s
	}
	return fallback
}

// asNumber accepts the numeric shapes encoding/json can produce for an `any`
// destination.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
