// Package dispatch implements the core utterance routing engine.
//
// The dispatcher receives messages from transports, offers the token
// sequence to every registered service, and executes the winning
// candidate. The sender always receives the response; this is an
// architectural invariant.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/usherd/usher/internal/message"
	"github.com/usherd/usher/internal/service"
	"github.com/usherd/usher/internal/tts"
)

// Dispatcher is the central routing engine.
type Dispatcher struct {
	services    []service.Service
	synthesizer tts.Synthesizer // nil if TTS is disabled
}

// New creates a Dispatcher probing the given services in order.
func New(services []service.Service, synthesizer tts.Synthesizer) *Dispatcher {
	return &Dispatcher{
		services:    services,
		synthesizer: synthesizer,
	}
}

// resolveResponseMode determines the effective ResponseMode for a message.
// If the caller didn't specify one, the default depends on whether TTS is available.
func (d *Dispatcher) resolveResponseMode(mode message.ResponseMode) message.ResponseMode {
	switch mode {
	case message.ResponseModeNone, message.ResponseModeText,
		message.ResponseModeAudio, message.ResponseModeTextAudio:
		return mode
	default:
		// Default: text+audio when TTS is available, text-only otherwise.
		if d.synthesizer != nil {
			return message.ResponseModeTextAudio
		}
		return message.ResponseModeText
	}
}

// wantText returns true if the response mode includes text output.
func wantText(mode message.ResponseMode) bool {
	return mode == message.ResponseModeText || mode == message.ResponseModeTextAudio
}

// wantAudio returns true if the response mode includes audio output.
func wantAudio(mode message.ResponseMode) bool {
	return mode == message.ResponseModeAudio || mode == message.ResponseModeTextAudio
}

// arbitrate picks the winning candidate: an exclusive candidate always
// outranks any non-exclusive one regardless of score; within the same
// exclusivity the highest score wins, earliest service breaking ties.
func arbitrate(candidates []*service.Candidate) *service.Candidate {
	var best *service.Candidate
	for _, c := range candidates {
		if c == nil {
			continue
		}
		switch {
		case best == nil:
			best = c
		case c.Exclusive != best.Exclusive:
			if c.Exclusive {
				best = c
			}
		case c.Score > best.Score:
			best = c
		}
	}
	return best
}

// Handle processes a single message through the full pipeline.
// This function is passed as the transport.Handler to each transport.
func (d *Dispatcher) Handle(ctx context.Context, msg *message.Message) (*message.DispatchResult, error) {
	start := time.Now()
	logger := slog.With("message_id", msg.ID, "source", msg.Source)

	respMode := d.resolveResponseMode(msg.ResponseMode)
	logger.Info("dispatch started", "response_mode", respMode)

	result := &message.DispatchResult{
		MessageID: msg.ID,
	}

	tokens := msg.TokenSequence()
	if len(tokens) == 0 {
		result.Error = "message has no text"
		return result, nil
	}
	result.Transcript = msg.Text
	if result.Transcript == "" {
		result.Transcript = strings.Join(message.Words(tokens), " ")
	}

	// Step 1: Offer the utterance to every service. A nil candidate
	// is the normal "not mine" answer.
	candidates := make([]*service.Candidate, 0, len(d.services))
	for _, svc := range d.services {
		c := svc.Evaluate(ctx, tokens)
		if c == nil {
			continue
		}
		logger.Debug("service claimed utterance",
			"service", c.Service, "score", c.Score, "exclusive", c.Exclusive)
		candidates = append(candidates, c)
	}

	// Step 2: Arbitrate and execute the winner.
	best := arbitrate(candidates)
	if best == nil {
		logger.Info("no service claimed utterance", "duration", time.Since(start))
		return result, nil
	}

	reply, err := best.Action(ctx)
	if err != nil {
		result.Error = fmt.Sprintf("%s action failed: %v", best.Service, err)
		logger.Error("action failed", "service", best.Service, "error", err)
		return result, nil
	}
	result.Handled = true
	result.Service = best.Service
	result.Score = best.Score
	result.Exclusive = best.Exclusive

	// Step 3: Populate the response based on response_mode.
	if wantText(respMode) {
		result.ResponseText = reply
	}

	if wantAudio(respMode) && d.synthesizer != nil && reply != "" {
		logger.Debug("synthesizing response", "text_length", len(reply))
		synthResult, err := d.synthesizer.Synthesize(ctx, reply, tts.SynthesizeOpts{})
		if err != nil {
			logger.Warn("TTS synthesis failed, continuing without audio", "error", err)
		} else {
			result.SetResponseAudioBytes(synthResult.Audio)
			result.ResponseContentType = synthResult.ContentType
			logger.Info("TTS synthesis complete", "audio_bytes", len(synthResult.Audio))
		}
	}

	logger.Info("dispatch complete",
		"service", best.Service, "score", best.Score, "duration", time.Since(start))

	// The result is always returned to the sender via the transport
	// that received the message.
	return result, nil
}
