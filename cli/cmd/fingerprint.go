package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	fingerprintCmd = &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a short hash identifying the currently loaded rules files",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := loadLinter()
			if err != nil {
				return err
			}
			fmt.Println(l.Fingerprint)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(fingerprintCmd)
}
