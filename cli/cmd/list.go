package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duron27/plox/modscan"
)

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the installed mods found in -directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}

			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			game, err := resolveGame(cfg)
			if err != nil {
				return err
			}

			modsDir := cfg.ModsDir
			if modsDir == "" {
				modsDir = "."
			}

			mods, err := modscan.List(os.DirFS(directory), modsDir, game.Extensions())
			if err != nil {
				return err
			}

			if len(mods) == 0 {
				fmt.Println("No mods found")
				return nil
			}
			for _, m := range mods {
				fmt.Println(m)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(listCmd)
}
