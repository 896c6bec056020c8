package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/usherd/usher/internal/fuzzy"
	"github.com/usherd/usher/internal/message"
	"github.com/usherd/usher/internal/player"
	"github.com/usherd/usher/internal/text"
	"github.com/usherd/usher/internal/words"
)

// Volume adjusts the playback output level:
//
//	volume up / volume down
//	set [the] volume to <number phrase>
//	what is the volume
//
// The target level is spoken, so "set volume to seven" and
// "set volume to 7" both work.
type Volume struct {
	player player.Player
}

// NewVolume returns the volume control service.
func NewVolume(p player.Player) *Volume {
	return &Volume{player: p}
}

// Name implements Service.
func (s *Volume) Name() string { return "volume" }

// Evaluate implements Service.
func (s *Volume) Evaluate(ctx context.Context, tokens []message.Token) *Candidate {
	// Keep digits: "set volume to 7" is as valid as "to seven".
	w := alnumWords(tokens)

	switch {
	case len(w) == 2 && fuzzy.Matches(w[0], "volume") && fuzzy.Matches(w[1], "up"):
		return s.adjust(+1)
	case len(w) == 2 && fuzzy.Matches(w[0], "volume") && fuzzy.Matches(w[1], "down"):
		return s.adjust(-1)
	case isVolumeQuery(w):
		return s.report()
	}

	// set [the] volume to <level>
	rest, ok := trimSetVolumePrefix(w)
	if !ok {
		return nil
	}
	level, err := words.Parse(strings.Join(rest, " "))
	if err != nil {
		slog.Debug("volume phrase did not parse", "phrase", strings.Join(rest, " "), "error", err)
		return nil
	}
	return s.set(int(level), level != float64(int(level)))
}

func (s *Volume) adjust(delta int) *Candidate {
	return &Candidate{
		Service: s.Name(),
		Score:   1.0,
		Action: func(context.Context) (string, error) {
			s.player.SetVolume(s.player.Volume() + delta)
			return "volume is now " + words.FormatInt(int64(s.player.Volume())), nil
		},
	}
}

func (s *Volume) set(level int, fractional bool) *Candidate {
	return &Candidate{
		Service:   s.Name(),
		Score:     1.0,
		Exclusive: true,
		Action: func(context.Context) (string, error) {
			if fractional || level < player.MinVolume || level > player.MaxVolume {
				return "the volume goes from zero to eleven", nil
			}
			s.player.SetVolume(level)
			return "volume set to " + words.FormatInt(int64(level)), nil
		},
	}
}

func (s *Volume) report() *Candidate {
	return &Candidate{
		Service: s.Name(),
		Score:   1.0,
		Action: func(context.Context) (string, error) {
			return "the volume is " + words.FormatInt(int64(s.player.Volume())), nil
		},
	}
}

// isVolumeQuery matches "what is the volume" and close variants like
// "whats the volume".
func isVolumeQuery(w []string) bool {
	if len(w) < 2 || len(w) > 4 {
		return false
	}
	if !fuzzy.Matches(w[len(w)-1], "volume") {
		return false
	}
	return fuzzy.Matches(w[0], "what") || fuzzy.Matches(w[0], "whats")
}

// alnumWords lower-cases token texts and strips them to letters and
// digits, dropping anything left empty.
func alnumWords(tokens []message.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		w := strings.ToLower(text.ToAlphanumeric(t.Text))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// trimSetVolumePrefix strips a leading "set [the] volume to" and
// returns the remainder.
func trimSetVolumePrefix(w []string) ([]string, bool) {
	if len(w) < 4 || !fuzzy.Matches(w[0], "set") {
		return nil, false
	}
	w = w[1:]
	if w[0] == "the" {
		w = w[1:]
	}
	if len(w) < 3 || !fuzzy.Matches(w[0], "volume") || w[1] != "to" {
		return nil, false
	}
	return w[2:], true
}
