package store

import (
	"strings"
	"testing"

	"lead-insights-go/internal/types"
)

func sample() []types.ScoredLead {
	return []types.ScoredLead{
		{
			Lead:  types.Lead{ID: 1, Name: "Hans", Make: "BMW", Model: "320d", Year: 2019, PriceEstimation: 21500},
			Score: 72,
			IsHot: true,
			Insights: types.ExtractedInsights{
				WillingnessToNegotiate: "high",
				HandoverDate:           "immediate",
				CarCondition:           "good",
				Sentiment:              "positive",
				CallOutcome:            "qualified",
				KeyNotes:               "Ready to sell.",
			},
		},
		{
			Lead:  types.Lead{ID: 2, Name: "Anna", Make: "Audi", Model: "A4", Year: 2017, PriceEstimation: 18000},
			Score: 36,
			Insights: types.ExtractedInsights{
				WillingnessToNegotiate: "unclear",
				HandoverDate:           "unclear",
				CarCondition:           "unclear",
				Sentiment:              "neutral",
				CallOutcome:            "failed",
				KeyNotes:               "No transcript available or call failed",
			},
		},
	}
}

func TestCurrentRoundTrip(t *testing.T) {
	st, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	leads, err := st.Current()
	if err != nil {
		t.Fatal(err)
	}
	if leads != nil {
		t.Fatalf("fresh store should have no current dataset, got %d leads", len(leads))
	}

	if err := st.SetCurrent(sample()); err != nil {
		t.Fatal(err)
	}
	leads, err = st.Current()
	if err != nil {
		t.Fatal(err)
	}
	if len(leads) != 2 {
		t.Fatalf("got %d leads, want 2", len(leads))
	}
	if leads[0].ID != 1 || leads[0].Score != 72 || !leads[0].IsHot {
		t.Fatalf("first lead did not round-trip: %+v", leads[0])
	}
	if leads[1].Insights.CallOutcome != "failed" {
		t.Fatalf("insights did not round-trip: %+v", leads[1].Insights)
	}
}

func TestSnapshotsAndListing(t *testing.T) {
	st, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := st.SaveUpload([]byte("raw bytes"), "leads.xlsx", "20260101_090000"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.SaveProcessed(sample(), "20260101_090000"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.SaveProcessed(sample(), "20260102_090000"); err != nil {
		t.Fatal(err)
	}

	uploads, err := st.ListUploads()
	if err != nil {
		t.Fatal(err)
	}
	if len(uploads) != 1 || uploads[0] != "upload_20260101_090000.xlsx" {
		t.Fatalf("unexpected uploads: %v", uploads)
	}

	processed, err := st.ListProcessed()
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 2 {
		t.Fatalf("got %d processed snapshots, want 2", len(processed))
	}
	if !strings.HasPrefix(processed[0], "leads_20260102") {
		t.Fatalf("newest snapshot must come first, got %v", processed)
	}
}
