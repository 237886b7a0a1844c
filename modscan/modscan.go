// Package modscan implements the mod-list-provider collaborator: it
// lists the installed mod files for a game directory so they can be
// checked or sorted against a rules document.
package modscan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// List returns the ASCII-lowercased name of every regular file directly
// under dir whose lowercased extension is in exts, sorted
// alphabetically. It does not recurse:
// original_source/src/lib.rs's gather_mods only reads one directory
// level (archive/pc/mod for Cyberpunk, the install root for Morrowind).
func List(fsys fs.FS, dir string, exts []string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var mods []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range exts {
			if ext == strings.ToLower(want) {
				mods = append(mods, strings.ToLower(entry.Name()))
				break
			}
		}
	}

	sort.Strings(mods)
	return mods, nil
}
