package cmd

import (
	"io/fs"
	"os"

	"github.com/duron27/plox"
	"github.com/duron27/plox/modscan"
	"github.com/duron27/plox/rules"
)

// loadLinter resolves the configured game and loads its merged rules
// document from -directory, tagging every log line with this process's
// run id.
func loadLinter() (*plox.Linter, Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, cfg, err
	}
	game, err := resolveGame(cfg)
	if err != nil {
		return nil, cfg, err
	}

	rulesDir := cfg.RulesDir
	var fsys fs.FS = os.DirFS(directory)
	if rulesDir != "" {
		sub, err := fs.Sub(fsys, rulesDir)
		if err != nil {
			return nil, cfg, err
		}
		fsys = sub
	}

	l, err := plox.Load(plox.Options{Game: game, Logger: fieldLogger()}, fsys)
	return l, cfg, err
}

// installedMods scans cfg.ModsDir (relative to -directory) for mod
// files matching the resolved game's extensions.
func installedMods(game rules.Game, cfg Config) ([]string, error) {
	modsDir := cfg.ModsDir
	if modsDir == "" {
		modsDir = "."
	}
	return modscan.List(os.DirFS(directory), modsDir, game.Extensions())
}
