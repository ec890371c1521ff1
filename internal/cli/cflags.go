// internal/cli/cflags.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var cflagsCmd = &cobra.Command{
	Use:   "cflags [modules...]",
	Short: "Print the compiler flags needed to build against the given modules",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCflags,
}

func runCflags(cmd *cobra.Command, args []string) error {
	logger.Debug("resolving cflags", "modules", args)
	res, err := facade.Cflags(args)
	if err != nil {
		return reportError(err)
	}
	fmt.Println(strings.Join(res.Flags, " "))
	return nil
}
