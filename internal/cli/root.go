// internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-tools/pkgconf/pcfile"
)

var (
	cfgFile        string
	searchPathFlag []string
	defineVars     []string
	silenceErrors  bool
	verbose        bool

	facade *pcfile.Facade
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:     "pkgconf",
	Short:   "Compiler and linker flag resolver for .pc package metadata",
	Long:    `pkgconf resolves compiler and linker flags for libraries described by .pc metadata files, following their dependency graph and version constraints.`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initFacade)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional pkgconf.yaml config file (none is read when unset)")
	rootCmd.PersistentFlags().StringSliceVar(&searchPathFlag, "search-path", nil, "additional .pc search directory (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&defineVars, "define-variable", nil, "override a package variable as NAME=VALUE (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&silenceErrors, "silence-errors", false, "exit nonzero on failure without printing the error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(cflagsCmd)
	rootCmd.AddCommand(libsCmd)
	rootCmd.AddCommand(staticLibsCmd)
	rootCmd.AddCommand(modversionCmd)
	rootCmd.AddCommand(listAllCmd)
}

func initFacade() {
	setupLogger(verbose)

	cfg, err := pcfile.DefaultConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = pcfile.Config{}
	}
	cfg.SearchPaths = append(append([]string{}, searchPathFlag...), cfg.SearchPaths...)
	cfg.DefineVariables = parseDefineVariables(defineVars)
	facade = pcfile.NewFacade(cfg)
}

// parseDefineVariables turns repeated "--define-variable NAME=VALUE"
// flags into the override map DefineVariables expects. Malformed
// entries (missing '=') are skipped.
func parseDefineVariables(defs []string) map[string]string {
	if len(defs) == 0 {
		return nil
	}
	out := make(map[string]string, len(defs))
	for _, d := range defs {
		name, value, ok := strings.Cut(d, "=")
		if !ok {
			continue
		}
		out[name] = value
	}
	return out
}

// reportError prints err to stderr unless --silence-errors was given, and
// always returns a non-nil error so RunE propagates a nonzero exit code.
func reportError(err error) error {
	if !silenceErrors {
		fmt.Fprintf(os.Stderr, "pkgconf: %v\n", err)
	}
	return err
}
