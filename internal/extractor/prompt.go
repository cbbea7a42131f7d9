package extractor

import "strings"

// The prompt pair is a fixed asset: the gateway-side behavior depends on the
// exact field names, enum vocabularies and extraction rules below.

const SystemPrompt = `You are an expert at extracting structured data from German car sales call transcripts.
Analyze the conversation and extract key information about the seller's intent and the vehicle.
Always respond with valid JSON only, no markdown or explanation.`

const UserPromptTemplate = `Extract the following fields from this transcript. Return ONLY valid JSON, no markdown code blocks.

Required JSON format:
{
  "asking_price": number | null,
  "willingness_to_negotiate": "high" | "medium" | "low" | "unclear",
  "handover_date": "immediate" | "1-2 weeks" | "2-4 weeks" | "flexible" | "unclear",
  "car_condition": "excellent" | "good" | "fair" | "poor" | "unclear",
  "num_owners": number | null,
  "sentiment": "positive" | "neutral" | "negative",
  "call_outcome": "qualified" | "callback_requested" | "not_interested" | "voicemail" | "failed",
  "key_notes": string
}

Important extraction rules:
- asking_price: Extract the final price in EUR. Convert German number words to numbers (e.g., "fünfunddreißigtausend" = 35000)
- willingness_to_negotiate: "Ja" to negotiation questions = "high", explicit refusal = "low"
- handover_date: "Jederzeit"/"sofort"/"so bald wie möglich" = "immediate", "vierzehn Tagen" = "1-2 weeks", "drei Monaten" = "2-4 weeks"
- car_condition: "wie neu"/"hundert Prozent"/"sehr gut" = "excellent", "Gut" = "good"
- num_owners: "Nur mich"/"Erst- und Einzelbesitzer" = 1
- sentiment: Cooperative responses = "positive", neutral = "neutral", hostile/refusing = "negative"
- call_outcome: Full conversation with info = "qualified", wants human callback = "callback_requested", "Nein" to selling = "not_interested", voicemail messages = "voicemail", no response/busy = "failed"
- key_notes: Brief English summary (max 50 words)

If the transcript is empty, very short, or shows a voicemail/failed call, return appropriate defaults:
- For voicemail: all fields "unclear"/null except call_outcome="voicemail" and relevant key_notes
- For failed/no answer: all fields "unclear"/null except call_outcome="failed"

Transcript:
{transcript}`

// BuildUserPrompt interpolates the transcript into the fixed user template.
func BuildUserPrompt(transcript string) string {
	return strings.Replace(UserPromptTemplate, "{transcript}", transcript, 1)
}
