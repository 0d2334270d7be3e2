package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"laydeck/internal/digest"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <layout>...",
		Short: "Print the content digest of deck layout files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				content, err := appCtx.Layout.ReadLayout(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", digest.Fingerprint(content), path)
			}
			return nil
		},
	}
	return cmd
}
