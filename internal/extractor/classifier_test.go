package extractor

import "testing"

func TestClassifyShortTranscriptIsFailed(t *testing.T) {
	cases := []string{
		"",
		"   \n\t  ",
		"Hallo?",
		"voicemail", // keyword, but still too short: length check wins
	}
	for _, transcript := range cases {
		insights, ok := Classify(transcript)
		if !ok {
			t.Fatalf("Classify(%q) should short-circuit", transcript)
		}
		if insights.CallOutcome != "failed" {
			t.Fatalf("Classify(%q) outcome = %q, want failed", transcript, insights.CallOutcome)
		}
		if insights.KeyNotes != "No transcript available or call failed" {
			t.Fatalf("Classify(%q) notes = %q", transcript, insights.KeyNotes)
		}
		if insights.AskingPrice != nil || insights.NumOwners != nil {
			t.Fatalf("Classify(%q) should not carry numeric fields", transcript)
		}
	}
}

func TestClassifyVoicemail(t *testing.T) {
	cases := []string{
		"Sie erreichen die Mobilbox von Hans Meier, bitte hinterlassen Sie eine Nachricht.",
		"Bitte hinterlassen Sie eine NACHRICHT NACH DEM SIGNALTON, danke.",
		"The call went straight to voicemail after three rings, nobody answered.",
		"Der Teilnehmer ist zur Zeit nicht zu erreichen, bitte später noch einmal.",
	}
	for _, transcript := range cases {
		insights, ok := Classify(transcript)
		if !ok {
			t.Fatalf("Classify(%q) should short-circuit", transcript)
		}
		if insights.CallOutcome != "voicemail" {
			t.Fatalf("Classify(%q) outcome = %q, want voicemail", transcript, insights.CallOutcome)
		}
		if insights.Sentiment != "neutral" {
			t.Fatalf("Classify(%q) sentiment = %q, want neutral", transcript, insights.Sentiment)
		}
	}
}

func TestClassifyPassesRealConversations(t *testing.T) {
	transcript := "Guten Tag, ich möchte meinen BMW verkaufen. Der Preis liegt bei 35000 Euro."
	if _, ok := Classify(transcript); ok {
		t.Fatalf("Classify should not short-circuit a real conversation")
	}
}
