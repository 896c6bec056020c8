package media

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// BuildLibrary walks dir and derives entries from the conventional
// artist/album/track.mp3 layout. Tag-based cataloguing is out of
// scope; the path is the metadata.
func BuildLibrary(dir string) (*Snapshot, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}

		entry := Entry{
			Name:    titleFromFilename(filepath.Base(rel)),
			Locator: "file://" + path,
			Enc:     EncodingMP3,
		}
		parts := strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/")
		if len(parts) > 0 && parts[0] != "." {
			entry.Artist = parts[0]
		}
		if len(parts) > 1 {
			entry.Album = parts[1]
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewSnapshot(entries), nil
}

// titleFromFilename turns "01 - Shape of You.mp3" into "shape of you".
func titleFromFilename(base string) string {
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(name)
	fields := strings.Fields(strings.ToLower(name))
	kept := fields[:0]
	for _, f := range fields {
		// Drop leading track numbers.
		if len(kept) == 0 && isDigits(f) {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
