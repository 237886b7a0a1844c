// Package plox loads rules documents for a mod-heavy game installation,
// evaluates warning rules against an installed mod list, and computes a
// stable load order satisfying the parsed Order/NearStart/NearEnd hints.
package plox

import (
	"bytes"
	"errors"
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/duron27/plox/rules"
)

// Options configures Load. The zero value selects Morrowind with a nil
// logger (all logging suppressed).
type Options struct {
	Game rules.Game

	// Logger receives per-file load diagnostics ("parsed file %s with %d
	// rules") and per-chunk parse failures. Defaults to a discarding
	// logger if nil.
	Logger logrus.FieldLogger
}

// Linter holds a merged, parsed rules Document for one game installation
// plus bookkeeping about how it was assembled.
type Linter struct {
	Game        rules.Game
	Doc         *rules.Document
	LoadedFiles []string
	Diagnostics []rules.Diagnostic
	Fingerprint string
}

// Load reads every canonical rules filename for opts.Game, in order,
// merging them into a single Document. A filename that does not exist,
// or that exists but fails to read, is logged as a warning and skipped.
// Per-chunk parse failures never abort either — they accumulate as
// Diagnostics on the returned Linter. If no rules file loads at all,
// Load returns a Linter with an empty Document rather than an error.
func Load(opts Options, fsys fs.FS) (*Linter, error) {
	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	candidates := opts.Game.RulesFilenames()
	exts := opts.Game.Extensions()

	merged := &rules.Document{}
	var diags []rules.Diagnostic
	var loaded []string
	fileBytes := make(map[string][]byte)

	for _, name := range candidates {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warnf("plox: could not find rules file %s", name)
			} else {
				logger.WithError(err).Warnf("plox: could not read rules file %s", name)
			}
			continue
		}

		fileDoc, fileDiags := rules.ParseDocument(bytes.NewReader(data), rules.FileRef(name), exts)
		for _, d := range fileDiags {
			diags = append(diags, d)
			logger.WithField("pos", d.Pos.String()).Debug(d.Message)
		}

		merged.Include(fileDoc)
		loaded = append(loaded, name)
		fileBytes[name] = data
		logger.Infof("plox: parsed file %s with %d rules", name, fileDoc.RuleCount())
	}

	if len(loaded) == 0 {
		logger.Warnf("plox: no rules file found for %s, continuing with an empty ruleset", opts.Game)
	}

	return &Linter{
		Game:        opts.Game,
		Doc:         merged,
		LoadedFiles: loaded,
		Diagnostics: diags,
		Fingerprint: fingerprintLoadedFiles(fileBytes),
	}, nil
}

// Check evaluates every warning rule against mods, returning the comment
// of each rule that fired, in declaration order.
func (l *Linter) Check(mods []string, desc rules.DescriptionProvider) []string {
	return l.Doc.Evaluate(mods, desc)
}

// Sort computes a stable load order for mods: a minimal-perturbation
// topological sort over the Document's Order edges, followed by applying
// NearStart/NearEnd hints. Returns a SortError wrapping a
// rules.CycleError if the rules are contradictory.
func (l *Linter) Sort(mods []string) ([]string, error) {
	edges := l.Doc.Edges()
	sorted, err := rules.Sort(mods, edges)
	if err != nil {
		return nil, SortError{Game: l.Game, Err: err}
	}
	return rules.ApplyNearHints(sorted, edges, l.Doc.NearStartNames(), l.Doc.NearEndNames()), nil
}
