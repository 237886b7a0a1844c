package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sortCmd = &cobra.Command{
		Use:   "sort",
		Short: "Print the installed mods in a load order that satisfies the rules' Order/NearStart/NearEnd hints",
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

			sorted, err := l.Sort(mods)
			if err != nil {
				return err
			}
			for _, m := range sorted {
				fmt.Println(m)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(sortCmd)
}
