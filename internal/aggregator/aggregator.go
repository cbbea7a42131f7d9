package aggregator

import (
	"math"

	"lead-insights-go/internal/types"
)

// Stats summarizes a ranked lead batch for the dashboard header.
type Stats struct {
	TotalLeads     int `json:"totalLeads"`
	HotLeads       int `json:"hotLeads"`
	WarmLeads      int `json:"warmLeads"`
	ColdLeads      int `json:"coldLeads"`
	AvgScore       int `json:"avgScore"`
	CallsConnected int `json:"callsConnected"`
	Qualified      int `json:"qualified"`
}

// Aggregate counts leads per score tier (hot >= 70, warm 40-69, cold < 40)
// and funnel outcome.
func Aggregate(leads []types.ScoredLead) Stats {
	s := Stats{TotalLeads: len(leads)}
	sum := 0
	for _, l := range leads {
		sum += l.Score
		switch {
		case l.Score >= 70:
			s.HotLeads++
		case l.Score >= 40:
			s.WarmLeads++
		default:
			s.ColdLeads++
		}
		if l.CallSuccessful {
			s.CallsConnected++
		}
		if l.Insights.CallOutcome == "qualified" {
			s.Qualified++
		}
	}
	if len(leads) > 0 {
		s.AvgScore = int(math.Round(float64(sum) / float64(len(leads))))
	}
	return s
}
