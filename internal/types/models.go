package types

// Lead is one seller record from an uploaded spreadsheet or JSON dataset.
type Lead struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	LastName        string   `json:"lastName,omitempty"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	Year            int      `json:"year"`
	Mileage         *float64 `json:"mileage,omitempty"`
	PriceEstimation float64  `json:"priceEstimation"`
	Status          string   `json:"status,omitempty"`
	Transcript      string   `json:"transcript"`
	CallSuccessful  bool     `json:"callSuccessful"`
	PhotoURL        string   `json:"photoUrl,omitempty"`
}

// ExtractedInsights holds the structured fields inferred from one call
// transcript. Nil pointers mark values the conversation did not reveal.
// Enum fields only ever hold members of the vocabularies below.
type ExtractedInsights struct {
	AskingPrice            *float64 `json:"asking_price"`
	WillingnessToNegotiate string   `json:"willingness_to_negotiate"`
	HandoverDate           string   `json:"handover_date"`
	CarCondition           string   `json:"car_condition"`
	NumOwners              *int     `json:"num_owners"`
	Sentiment              string   `json:"sentiment"`
	CallOutcome            string   `json:"call_outcome"`
	KeyNotes               string   `json:"key_notes"`
}

// Enum vocabularies. The sanitizer rejects anything outside these sets.
var (
	NegotiationValues = []string{"high", "medium", "low", "unclear"}
	HandoverValues    = []string{"immediate", "1-2 weeks", "2-4 weeks", "flexible", "unclear"}
	ConditionValues   = []string{"excellent", "good", "fair", "poor", "unclear"}
	SentimentValues   = []string{"positive", "neutral", "negative"}
	OutcomeValues     = []string{"qualified", "callback_requested", "not_interested", "voicemail", "failed"}
)

// ScoreBreakdown is the per-factor decomposition of a lead's priority score.
// Factor maxima sum to exactly 100, so Total is always within [0,100].
type ScoreBreakdown struct {
	Urgency     int `json:"urgency"`
	Negotiation int `json:"negotiation"`
	Condition   int `json:"condition"`
	Owners      int `json:"owners"`
	Sentiment   int `json:"sentiment"`
	PriceGap    int `json:"priceGap"`
	Total       int `json:"total"`
}

// ScoredLead is a lead annotated with its insights and priority score,
// the unit persisted and displayed.
type ScoredLead struct {
	Lead
	Insights ExtractedInsights `json:"insights"`
	Score    int               `json:"score"`
	IsHot    bool              `json:"isHot"`
}
