// internal/cli/libs.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var libsCmd = &cobra.Command{
	Use:   "libs [modules...]",
	Short: "Print the linker flags needed to link against the given modules",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLibs,
}

func runLibs(cmd *cobra.Command, args []string) error {
	logger.Debug("resolving libs", "modules", args)
	res, err := facade.Libs(args)
	if err != nil {
		return reportError(err)
	}
	fmt.Println(strings.Join(res.Flags, " "))
	return nil
}
