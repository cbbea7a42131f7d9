package extractor

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"lead-insights-go/internal/llm"
	"lead-insights-go/internal/logger"
	"lead-insights-go/internal/types"
)

// Extractor turns one transcript into a validated insight record. It never
// returns an error: every failure mode collapses into a canned record so the
// ranking stage always has a well-formed input. Re-extraction is idempotent.
type Extractor struct {
	llm llm.Completer
	log *logrus.Entry
}

func New(completer llm.Completer, log *logger.Logger) *Extractor {
	return &Extractor{
		llm: completer,
		log: log.WithComponent("extractor"),
	}
}

// Extract classifies, invokes the model for real conversations, cleans and
// parses the response, and sanitizes the result. Single model invocation per
// transcript; a terminal failure becomes the canned failed record.
func (e *Extractor) Extract(ctx context.Context, transcript string) types.ExtractedInsights {
	if insights, ok := Classify(transcript); ok {
		e.log.WithField("call_outcome", insights.CallOutcome).Debug("short-circuited without model call")
		return insights
	}

	content, err := e.llm.Complete(ctx, SystemPrompt, BuildUserPrompt(transcript))
	if err != nil {
		e.log.WithError(err).Warn("model call failed, returning fallback record")
		return failedRecord("Error during extraction")
	}

	jsonStr := extractJSON(content)
	if jsonStr == "" {
		e.log.WithField("response_len", len(content)).Warn("no JSON object in model response")
		return failedRecord("Error during extraction")
	}

	var raw rawInsights
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		e.log.WithError(err).Warn("model response is not parseable JSON")
		return failedRecord("Error during extraction")
	}

	return Sanitize(raw)
}
