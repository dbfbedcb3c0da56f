// Package entitykit holds request shapes shared by the entity modules.
// Every entity endpoint accepts the same base parameters; the kit keeps
// their JSON names and query-string parsing in one place
package entitykit

import (
	"encoding/json"
	"net/http"

	perr "entex/internal/platform/errors"
)

// Text is a message payload that accepts either a single string or a
// JSON list of strings. A list switches the endpoint into bulk mode
type Text struct {
	One  string
	Many []string
}

// Bulk reports whether the payload carried a list
func (t Text) Bulk() bool { return t.Many != nil }

// UnmarshalJSON accepts "..." or ["...", "..."]
func (t *Text) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &t.Many)
	}
	return json.Unmarshal(b, &t.One)
}

// MarshalJSON mirrors UnmarshalJSON for logging and echo payloads
func (t Text) MarshalJSON() ([]byte, error) {
	if t.Many != nil {
		return json.Marshal(t.Many)
	}
	return json.Marshal(t.One)
}

// BaseInput carries the parameters common to every entity endpoint
type BaseInput struct {
	Message         Text   `json:"message"`
	EntityName      string `json:"entity_name,omitempty" validate:"omitempty,max=64"`
	StructuredValue string `json:"structured_value,omitempty"`
	FallbackValue   string `json:"fallback_value,omitempty"`
	BotMessage      string `json:"bot_message,omitempty"`
	Timezone        string `json:"timezone,omitempty" validate:"omitempty,printascii,max=64"`
	SourceLanguage  string `json:"source_language,omitempty" validate:"omitempty,bcp47_language_tag"`
}

// Entity returns the entity name or the given default when the request
// left it empty
func (b BaseInput) Entity(def string) string {
	if b.EntityName != "" {
		return b.EntityName
	}
	return def
}

// Validate rejects requests with nothing to scan
func (b BaseInput) Validate() error {
	if b.Message.One == "" && len(b.Message.Many) == 0 &&
		b.StructuredValue == "" && b.FallbackValue == "" {
		return perr.InvalidArgf("message, structured_value and fallback_value are all empty")
	}
	return nil
}

// FromQuery fills the base fields from URL query parameters for the GET
// form of the endpoints. A message parameter that parses as a JSON list
// is treated as bulk input
func FromQuery(r *http.Request) BaseInput {
	q := r.URL.Query()
	b := BaseInput{
		EntityName:      q.Get("entity_name"),
		StructuredValue: q.Get("structured_value"),
		FallbackValue:   q.Get("fallback_value"),
		BotMessage:      q.Get("bot_message"),
		Timezone:        q.Get("timezone"),
		SourceLanguage:  q.Get("source_language"),
	}
	msg := q.Get("message")
	if len(msg) > 0 && msg[0] == '[' {
		var many []string
		if err := json.Unmarshal([]byte(msg), &many); err == nil {
			b.Message.Many = many
			return b
		}
	}
	b.Message.One = msg
	return b
}
