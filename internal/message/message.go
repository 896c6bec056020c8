// Package message defines the core data types flowing through the usher pipeline.
package message

import (
	"encoding/base64"
	"strings"
	"time"
)

// ResponseMode controls what natural-language output the caller wants.
// The caller declares desired output in the request body and the server
// populates or omits response fields accordingly.
type ResponseMode string

const (
	// ResponseModeNone suppresses all natural-language output.
	ResponseModeNone ResponseMode = "none"

	// ResponseModeText returns a natural-language text response.
	ResponseModeText ResponseMode = "text"

	// ResponseModeAudio returns TTS-synthesized audio only (no text).
	ResponseModeAudio ResponseMode = "audio"

	// ResponseModeTextAudio returns both text and synthesized audio.
	ResponseModeTextAudio ResponseMode = "text+audio"
)

// Token is one recognized word of an utterance, as produced by the
// upstream speech-to-text collaborator. Tokens are read-only to the
// grammar layer.
type Token struct {
	// Text is the recognized word.
	Text string `json:"text"`

	// Confidence is the recognizer's confidence in [0, 1].
	Confidence float64 `json:"confidence"`

	// IsFinal reports whether the recognizer considers this word settled
	// (as opposed to a provisional partial result).
	IsFinal bool `json:"is_final"`
}

// Tokenize converts plain utterance text into a final token sequence,
// one token per whitespace-separated word with confidence 1.0. This is
// the same shape the speech-to-text collaborator produces, so text and
// voice entry paths are indistinguishable to the grammar.
func Tokenize(text string) []Token {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, Token{Text: f, Confidence: 1.0, IsFinal: true})
	}
	return tokens
}

// Words returns the token texts in order.
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}

// Message represents an incoming utterance from any transport.
type Message struct {
	// ID is a unique identifier for this message (UUID).
	ID string `json:"id"`

	// Source identifies the sender (e.g., "kitchen-mic", "phone-alice").
	Source string `json:"source"`

	// Text is the utterance as plain text. Ignored when Tokens is set.
	Text string `json:"text,omitempty"`

	// Tokens is the recognized token sequence. Takes precedence over Text.
	Tokens []Token `json:"tokens,omitempty"`

	// ResponseMode controls the natural-language response output.
	// Defaults to "text" when TTS is disabled, "text+audio" when enabled.
	ResponseMode ResponseMode `json:"response_mode,omitempty"`

	// ReplyTo is a transport-specific reply address (e.g., an MQTT topic).
	ReplyTo string `json:"reply_to,omitempty"`

	// Timestamp is when the message was received by usher.
	Timestamp time.Time `json:"timestamp"`
}

// TokenSequence returns the message's tokens, tokenizing Text when no
// explicit token sequence was supplied.
func (m *Message) TokenSequence() []Token {
	if len(m.Tokens) > 0 {
		return m.Tokens
	}
	return Tokenize(m.Text)
}

// DispatchResult is the outcome of processing an utterance through the pipeline.
type DispatchResult struct {
	// MessageID is the original message ID.
	MessageID string `json:"message_id"`

	// Transcript is the utterance the services evaluated.
	Transcript string `json:"transcript,omitempty"`

	// Service is the name of the service whose candidate won, if any.
	Service string `json:"service,omitempty"`

	// Score is the winning candidate's match score in [0, 1].
	Score float64 `json:"score,omitempty"`

	// Exclusive reports whether the winning candidate was a confident,
	// concrete match that pre-empted ambiguous alternatives.
	Exclusive bool `json:"exclusive,omitempty"`

	// Handled reports whether any service produced a candidate.
	Handled bool `json:"handled"`

	// ResponseText is a natural-language confirmation.
	// Populated when response_mode is "text" or "text+audio".
	ResponseText string `json:"response_text,omitempty"`

	// ResponseAudio is TTS-synthesized audio as a base64-encoded string.
	// Populated when response_mode is "audio" or "text+audio".
	ResponseAudio string `json:"response_audio,omitempty"`

	// ResponseContentType is the MIME type of ResponseAudio (e.g., "audio/wav").
	ResponseContentType string `json:"response_content_type,omitempty"`

	// Error is set if processing failed at some stage.
	Error string `json:"error,omitempty"`
}

// SetResponseAudioBytes base64-encodes raw audio bytes into ResponseAudio.
func (r *DispatchResult) SetResponseAudioBytes(audio []byte) {
	if len(audio) > 0 {
		r.ResponseAudio = base64.StdEncoding.EncodeToString(audio)
	}
}
