// Package scoring converts extracted insights plus a price estimate into a
// deterministic 0-100 priority score. Pure lookups, no failure mode:
// unrecognized values take a mid-range default.
package scoring

import "lead-insights-go/internal/types"

// Factor tables. Maxima are 25+20+20+10+10+15 = 100, so the total is bounded
// by construction.
var urgencyPoints = map[string]int{
	"immediate": 25,
	"1-2 weeks": 20,
	"flexible":  15,
	"2-4 weeks": 10,
	"unclear":   5,
}

var negotiationPoints = map[string]int{
	"high":    20,
	"medium":  15,
	"unclear": 10,
	"low":     5,
}

var conditionPoints = map[string]int{
	"excellent": 20,
	"good":      15,
	"fair":      10,
	"unclear":   8,
	"poor":      5,
}

var sentimentPoints = map[string]int{
	"positive": 10,
	"neutral":  5,
	"negative": 0,
}

func lookup(table map[string]int, value string, fallback int) int {
	if pts, ok := table[value]; ok {
		return pts
	}
	return fallback
}

// Calculate scores one lead's insights against its price estimation.
func Calculate(insights types.ExtractedInsights, priceEstimation float64) types.ScoreBreakdown {
	b := types.ScoreBreakdown{
		Urgency:     lookup(urgencyPoints, insights.HandoverDate, 5),
		Negotiation: lookup(negotiationPoints, insights.WillingnessToNegotiate, 10),
		Condition:   lookup(conditionPoints, insights.CarCondition, 8),
		Owners:      ownersScore(insights.NumOwners),
		Sentiment:   lookup(sentimentPoints, insights.Sentiment, 5),
		PriceGap:    priceGapScore(insights.AskingPrice, priceEstimation),
	}
	b.Total = b.Urgency + b.Negotiation + b.Condition + b.Owners + b.Sentiment + b.PriceGap
	return b
}

// Fewer previous owners = cleaner history.
func ownersScore(numOwners *int) int {
	if numOwners == nil {
		return 3
	}
	switch {
	case *numOwners == 1:
		return 10
	case *numOwners == 2:
		return 7
	default:
		return 5
	}
}

// priceGapScore rewards asking prices at or below the estimation. Brackets
// are inclusive on the low side: ratio 1.0 scores 15, ratio 1.1 scores 10.
func priceGapScore(askingPrice *float64, priceEstimation float64) int {
	if askingPrice == nil || priceEstimation <= 0 {
		return 5
	}
	ratio := *askingPrice / priceEstimation
	switch {
	case ratio <= 1.0:
		return 15
	case ratio <= 1.1:
		return 10
	default:
		return 5
	}
}

// IsHot reports whether a total score reaches the hot-lead threshold.
func IsHot(score int) bool {
	return score >= 70
}

// Label maps a total score onto its display tier.
func Label(score int) string {
	switch {
	case score >= 70:
		return "Hot"
	case score >= 40:
		return "Warm"
	default:
		return "Cold"
	}
}
