package plox

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// fingerprintLoadedFiles hashes the raw bytes of every loaded rules file,
// sorted by name so the result is independent of load order, following
// preprocess.go's SchemaSuffixFromHash: hash a deterministic byte stream
// and truncate to 6 bytes of hex, a negligible collision probability for
// the handful of rules files a single game ships.
func fingerprintLoadedFiles(files map[string][]byte) string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	hasher := sha256.New()
	for _, name := range names {
		hasher.Write([]byte(name + "\x00"))
		hasher.Write(files[name])
		hasher.Write([]byte{'\n'})
	}
	return hex.EncodeToString(hasher.Sum(nil)[:6])
}
