// Package service defines command services. Each service probes an
// utterance's token sequence and, when the utterance is its kind of
// command, returns a scored candidate action. A nil candidate is the
// normal "not mine" answer; it is how the dispatcher probes several
// grammars cheaply in sequence.
package service

import (
	"context"

	"github.com/usherd/usher/internal/message"
)

// Candidate is a service's claim on an utterance. The dispatcher picks
// at most one candidate to execute; an exclusive candidate always
// outranks non-exclusive ones regardless of score.
type Candidate struct {
	// Service names the service that produced the candidate.
	Service string

	// Score is the match confidence in [0, 1].
	Score float64

	// Exclusive marks a confident, concrete match that pre-empts
	// ambiguous alternatives.
	Exclusive bool

	// Action performs the command and returns the spoken response,
	// which may be empty. Run at most once.
	Action func(ctx context.Context) (string, error)
}

// Service evaluates utterances for one command domain.
type Service interface {
	// Name identifies the service in logs and results.
	Name() string

	// Evaluate inspects the tokens and returns a candidate, or nil
	// when the utterance is not this service's kind of command.
	Evaluate(ctx context.Context, tokens []message.Token) *Candidate
}
