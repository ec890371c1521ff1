// internal/cli/listall.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listAllCmd = &cobra.Command{
	Use:   "list-all",
	Short: "List every module discoverable on the search path",
	Args:  cobra.NoArgs,
	RunE:  runListAll,
}

func runListAll(cmd *cobra.Command, args []string) error {
	modules, err := facade.ListAll()
	if err != nil {
		return reportError(err)
	}
	for _, m := range modules {
		fmt.Printf("%-30s %s - %s\n", m.Key, m.Name, m.Description)
	}
	return nil
}
