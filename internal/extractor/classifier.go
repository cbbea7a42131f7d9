package extractor

import (
	"strings"
	"unicode/utf8"

	"lead-insights-go/internal/types"
)

// voicemailIndicators are substrings (matched case-insensitively) that mark a
// transcript as an answering-machine recording rather than a conversation.
var voicemailIndicators = []string{
	"voicemail",
	"mobilbox",
	"nachricht nach dem signalton",
	"nicht entgegengenommen",
	"nicht zu erreichen",
}

// failedRecord is the canned insight record for unusable input or a failed
// extraction. Sentiment stays "neutral" rather than an unclear marker; the
// sentiment vocabulary has no such member.
func failedRecord(notes string) types.ExtractedInsights {
	return types.ExtractedInsights{
		WillingnessToNegotiate: "unclear",
		HandoverDate:           "unclear",
		CarCondition:           "unclear",
		Sentiment:              "neutral",
		CallOutcome:            "failed",
		KeyNotes:               notes,
	}
}

func voicemailRecord() types.ExtractedInsights {
	return types.ExtractedInsights{
		WillingnessToNegotiate: "unclear",
		HandoverDate:           "unclear",
		CarCondition:           "unclear",
		Sentiment:              "neutral",
		CallOutcome:            "voicemail",
		KeyNotes:               "Call went to voicemail - no conversation",
	}
}

// Classify runs the cheap pre-checks that short-circuit a model call. The
// length check runs first: a too-short transcript is always "failed", even if
// it happens to contain a voicemail keyword.
func Classify(transcript string) (types.ExtractedInsights, bool) {
	if utf8.RuneCountInString(strings.TrimSpace(transcript)) < 20 {
		return failedRecord("No transcript available or call failed"), true
	}

	lower := strings.ToLower(transcript)
	for _, indicator := range voicemailIndicators {
		if strings.Contains(lower, indicator) {
			return voicemailRecord(), true
		}
	}

	return types.ExtractedInsights{}, false
}
