package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/usherd/usher/internal/fuzzy"
	"github.com/usherd/usher/internal/media"
	"github.com/usherd/usher/internal/message"
	"github.com/usherd/usher/internal/player"
	"github.com/usherd/usher/internal/text"
)

// Music plays media from one named platform. The grammar is a single
// greedy left-to-right pass over the utterance:
//
//	play <song or album> on <platform>
//	play <genre> music
//	play <song or album> by <artist>
//
// plus single-word "stop" and "play" transport controls.
type Music struct {
	name     string
	platform string
	player   player.Player
	catalog  media.Catalog
}

// NewMusic returns a music service bound to the given platform name.
func NewMusic(platform string, p player.Player, catalog media.Catalog) *Music {
	return &Music{
		name:     strings.ToLower(platform) + "-music",
		platform: strings.ToLower(platform),
		player:   p,
		catalog:  catalog,
	}
}

// Name implements Service.
func (s *Music) Name() string { return s.name }

// Evaluate implements Service.
func (s *Music) Evaluate(ctx context.Context, tokens []message.Token) *Candidate {
	words := normalizeWords(tokens)

	// Single control words short-circuit the grammar.
	if len(words) == 1 {
		if fuzzy.Matches(words[0], "stop") {
			return s.pauseCandidate()
		}
		if fuzzy.Matches(words[0], "play") {
			return s.unpauseCandidate()
		}
	}

	// Anything structured needs at least "play <something> <more>".
	if len(words) < 3 {
		return nil
	}
	if !fuzzy.Matches(words[0], "play") {
		return nil
	}
	words = words[1:]

	// A trailing "on <platform>" names the target platform exactly.
	// A different platform means the utterance is not for us at all.
	platformMatch := false
	if fuzzy.Matches(words[len(words)-2], "on") {
		if words[len(words)-1] != s.platform {
			return nil
		}
		platformMatch = true
		words = words[:len(words)-2]
	}

	// The suffix after the last "by" is an artist only if the index
	// confirms it; "bye bye baby" must not lose its tail. Earlier
	// "by" occurrences are not retried.
	var artist []string
	if len(words) >= 3 {
		if i := lastIndex(words, "by"); i >= 0 && i < len(words)-1 {
			candidate := words[i+1:]
			if s.matchArtist(candidate) {
				artist = candidate
				words = words[:i]
			}
		}
	}

	// A trailing "music" marks a genre, but only when no artist was
	// found ("sexy music" could be a title).
	var genre []string
	if artist == nil && len(words) > 1 && fuzzy.Matches(words[len(words)-1], "music") {
		genre = words[:len(words)-1]
		words = nil
	}

	return s.resolve(platformMatch, genre, artist, words)
}

// pauseCandidate offers to stop playback, but only when something is
// actually playing.
func (s *Music) pauseCandidate() *Candidate {
	if !s.player.IsPlaying() {
		return nil
	}
	return &Candidate{
		Service: s.name,
		Score:   1.0,
		Action: func(context.Context) (string, error) {
			s.player.Pause()
			return "", nil
		},
	}
}

// unpauseCandidate offers to resume, but only when playback is paused.
// Resuming is exclusive: a bare "play" with paused music has exactly
// one sensible meaning.
func (s *Music) unpauseCandidate() *Candidate {
	if !s.player.IsPaused() {
		return nil
	}
	return &Candidate{
		Service:   s.name,
		Score:     1.0,
		Exclusive: true,
		Action: func(context.Context) (string, error) {
			s.player.Unpause()
			return "", nil
		},
	}
}

// matchArtist reports whether the index knows the artist. A still-
// building index matches nothing.
func (s *Music) matchArtist(artist []string) bool {
	return len(s.catalog.Lookup("", strings.Join(artist, " "))) > 0
}

// resolve turns the extracted slots into a playable candidate. The
// subject is tried as a song name first, then as an album title.
func (s *Music) resolve(platformMatch bool, genre, artist, subject []string) *Candidate {
	if !s.catalog.Ready() {
		slog.Debug("media index not ready", "service", s.name)
		return nil
	}
	if len(subject) == 0 {
		// Genre-only requests need tag metadata the index does not
		// carry; see the catalogue layout notes.
		return nil
	}

	name := strings.Join(subject, " ")
	artistName := strings.Join(artist, " ")

	var (
		entries []media.Entry
		score   int
		what    string
	)
	if entries = s.catalog.Lookup(name, artistName); len(entries) > 0 {
		// Just pick the best; score by how well its name matches.
		entries = entries[:1]
		score = fuzzy.Ratio(entries[0].Name, name)
		what = describe(entries[0].Name, entries[0].Artist)
	} else if entries = s.catalog.LookupAlbum(name, artistName); len(entries) > 0 {
		// An album match plays the whole album.
		score = fuzzy.Ratio(entries[0].Album, name)
		what = describe(entries[0].Album, entries[0].Artist)
	} else {
		return nil
	}

	locators := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Locator, "file://") && e.Enc == media.EncodingMP3 {
			locators = append(locators, e.Locator)
		}
	}
	if len(locators) == 0 {
		return nil
	}

	return &Candidate{
		Service:   s.name,
		Score:     float64(score) / 100.0,
		Exclusive: true,
		Action: func(context.Context) (string, error) {
			slog.Info("playing", "service", s.name, "what", what, "tracks", len(locators))
			if err := s.player.Play(locators); err != nil {
				return "", fmt.Errorf("starting playback: %w", err)
			}
			return "playing " + what, nil
		},
	}
}

func describe(name, artist string) string {
	if artist != "" {
		return name + " by " + artist
	}
	return name
}

// normalizeWords lower-cases the token texts and strips them to bare
// letters, dropping anything left empty.
func normalizeWords(tokens []message.Token) []string {
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		w := strings.ToLower(text.ToLetters(t.Text))
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// lastIndex returns the index of the last exact occurrence of target.
func lastIndex(words []string, target string) int {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] == target {
			return i
		}
	}
	return -1
}
