package llm

import "context"

// Mock returns a fixed completion; used for offline demos and tests.
type Mock struct {
	Response string
	Err      error
}

func (m *Mock) Complete(ctx context.Context, system, user string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return `{
  "asking_price": 21500,
  "willingness_to_negotiate": "medium",
  "handover_date": "1-2 weeks",
  "car_condition": "good",
  "num_owners": 2,
  "sentiment": "positive",
  "call_outcome": "qualified",
  "key_notes": "Seller open to handover within two weeks, minor negotiation expected."
}`, nil
}
