/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/

// version.go implements the version command.

package cmd

import (
	"fmt"

	"github.com/fixhub-es/tradexdb/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build time, git commit, Go version, and platform.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprint(Out(), version.Get().String())
		},
	}
}
