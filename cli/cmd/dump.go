package cmd

import (
	"errors"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
)

var (
	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dump the parsed rules document as Go-syntax-like structures, for debugging the parser",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}

			l, _, err := loadLinter()
			if err != nil {
				return err
			}

			repr.Println(l.Doc)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}
