// internal/cli/staticlibs.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var staticLibsCmd = &cobra.Command{
	Use:   "static-libs [modules...]",
	Short: "Print the linker flags needed for a static link, including private dependencies",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStaticLibs,
}

func runStaticLibs(cmd *cobra.Command, args []string) error {
	logger.Debug("resolving static-libs", "modules", args)
	res, err := facade.StaticLibs(args)
	if err != nil {
		return reportError(err)
	}
	fmt.Println(strings.Join(res.Flags, " "))
	return nil
}
