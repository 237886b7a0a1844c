package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duron27/plox/rules"
)

var (
	gamesCmd = &cobra.Command{
		Use:   "games",
		Short: "List supported games, their mod extensions, and canonical rules filenames",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, g := range []rules.Game{rules.Morrowind, rules.OpenMorrowind, rules.Cyberpunk} {
				fmt.Printf("%s\n", g)
				fmt.Printf("  extensions: %s\n", strings.Join(g.Extensions(), ", "))
				fmt.Printf("  rules files: %s\n", strings.Join(g.RulesFilenames(), ", "))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(gamesCmd)
}
