package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duron27/plox/descsource"
	"github.com/duron27/plox/rules"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Scan the installed mods and print any Note/Conflict/Requires/Patch warnings that fire",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}

			l, cfg, err := loadLinter()
			if err != nil {
				return err
			}
			for _, d := range l.Diagnostics {
				fmt.Printf("warning: %s\n", d.Error())
			}

			mods, err := installedMods(l.Game, cfg)
			if err != nil {
				return err
			}
			if len(mods) == 0 {
				fmt.Println("No mods found")
				return nil
			}

			desc, err := resolveDescriptions(cfg)
			if err != nil {
				return err
			}

			return printWarnings(l.Check(mods, desc))
		},
	}
)

// resolveDescriptions loads cfg.DescriptionFile if configured, otherwise
// returns a provider that always reports no description, so DESC
// expressions uniformly evaluate false.
func resolveDescriptions(cfg Config) (rules.DescriptionProvider, error) {
	if cfg.DescriptionFile == "" {
		return noDescriptions{}, nil
	}
	return descsource.Load(os.DirFS(directory), cfg.DescriptionFile)
}

func printWarnings(warnings []string) error {
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}
	for _, w := range warnings {
		fmt.Println(w)
	}
	return nil
}

type noDescriptions struct{}

func (noDescriptions) Description(string) (string, bool) { return "", false }

func init() {
	rootCmd.AddCommand(checkCmd)
}
