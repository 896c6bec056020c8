// Package media defines the media index contract and its in-process
// implementation: an immutable snapshot built once (possibly in the
// background) and published atomically to readers.
package media

import (
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/antzucaro/matchr"
)

// Encodings an entry's audio can carry. Playback filters to encodings
// it supports.
const (
	EncodingMP3 = "mp3"
)

// Entry is one indexed piece of media.
type Entry struct {
	Name    string `json:"name"`
	Artist  string `json:"artist,omitempty"`
	Album   string `json:"album,omitempty"`
	Locator string `json:"locator"` // URI, e.g. file:///music/artist/album/track.mp3
	Enc     string `json:"encoding"`
}

// Catalog is the lookup contract command grammars resolve against. An
// empty result means no match, never an error. Ready reports whether
// the index has been built yet; an unready catalog is a transient,
// retryable state, not a failure.
type Catalog interface {
	// Ready reports whether a snapshot has been published.
	Ready() bool

	// Lookup returns entries whose name (and artist, when given)
	// matches, best match first. Empty arguments are wildcards.
	Lookup(name, artist string) []Entry

	// LookupAlbum is Lookup with the name compared against album titles.
	LookupAlbum(album, artist string) []Entry
}

// nameSimilarityThreshold is the Jaro-Winkler score a stored name must
// reach against the query before an entry is considered a match.
const nameSimilarityThreshold = 0.9

// Snapshot is a fully-built, immutable index. Safe for unbounded
// concurrent lookups.
type Snapshot struct {
	entries []Entry
}

// NewSnapshot builds a snapshot over the given entries. The slice is
// copied; the snapshot never changes afterwards.
func NewSnapshot(entries []Entry) *Snapshot {
	s := &Snapshot{entries: make([]Entry, len(entries))}
	copy(s.entries, entries)
	return s
}

// Len returns the number of indexed entries.
func (s *Snapshot) Len() int { return len(s.entries) }

func similar(stored, query string) (float64, bool) {
	stored = strings.ToLower(stored)
	query = strings.ToLower(query)
	if stored == query {
		return 1.0, true
	}
	score := matchr.JaroWinkler(stored, query, false)
	return score, score >= nameSimilarityThreshold
}

// Lookup returns entries matching the given name and artist, best
// match first. Empty arguments are wildcards.
func (s *Snapshot) Lookup(name, artist string) []Entry {
	return s.lookup(name, artist, func(e Entry) string { return e.Name })
}

// LookupAlbum returns entries whose album title matches, best first.
func (s *Snapshot) LookupAlbum(album, artist string) []Entry {
	return s.lookup(album, artist, func(e Entry) string { return e.Album })
}

func (s *Snapshot) lookup(name, artist string, key func(Entry) string) []Entry {
	type scored struct {
		entry Entry
		score float64
	}
	var matches []scored
	for _, e := range s.entries {
		score := 1.0
		if name != "" {
			var ok bool
			if score, ok = similar(key(e), name); !ok {
				continue
			}
		}
		if artist != "" {
			if _, ok := similar(e.Artist, artist); !ok {
				continue
			}
		}
		matches = append(matches, scored{entry: e, score: score})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = m.entry
	}
	return out
}

// AsyncIndex is the shared slot a background build publishes its
// snapshot into. A single writer publishes one fully-built snapshot
// exactly once; readers observe either "unset" or "fully built", never
// a partial structure.
type AsyncIndex struct {
	snap atomic.Pointer[Snapshot]
}

// Ready reports whether the snapshot has been published.
func (a *AsyncIndex) Ready() bool { return a.snap.Load() != nil }

// Publish installs the snapshot. Publishing twice is a programmer
// error and panics.
func (a *AsyncIndex) Publish(s *Snapshot) {
	if s == nil {
		panic("media: publishing a nil snapshot")
	}
	if !a.snap.CompareAndSwap(nil, s) {
		panic("media: snapshot published twice")
	}
}

// Lookup delegates to the published snapshot; it returns nothing while
// the index is still building.
func (a *AsyncIndex) Lookup(name, artist string) []Entry {
	if s := a.snap.Load(); s != nil {
		return s.Lookup(name, artist)
	}
	return nil
}

// LookupAlbum delegates to the published snapshot.
func (a *AsyncIndex) LookupAlbum(album, artist string) []Entry {
	if s := a.snap.Load(); s != nil {
		return s.LookupAlbum(album, artist)
	}
	return nil
}

// StartBuild scans dir for media in the background and publishes the
// resulting snapshot. Fire and forget: readers poll Ready.
func (a *AsyncIndex) StartBuild(dir string) {
	go func() {
		snap, err := BuildLibrary(dir)
		if err != nil {
			slog.Error("media index build failed", "dir", dir, "error", err)
			return
		}
		a.Publish(snap)
		slog.Info("media index built", "dir", dir, "entries", snap.Len())
	}()
}

