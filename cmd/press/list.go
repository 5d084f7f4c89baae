package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bytepress/press/codecs"
)

var listCmd = &cobra.Command{
	Use:   "codecs",
	Short: "List the supported codecs and their default levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range codecs.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s default level %d\n", c.Name(), c.DefaultLevel())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
