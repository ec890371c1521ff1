// internal/cli/modversion.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var modversionCmd = &cobra.Command{
	Use:   "modversion <module>",
	Short: "Print the declared version of a single module",
	Args:  cobra.ExactArgs(1),
	RunE:  runModVersion,
}

func runModVersion(cmd *cobra.Command, args []string) error {
	version, err := facade.ModVersion(args[0])
	if err != nil {
		return reportError(err)
	}
	fmt.Println(version)
	return nil
}
