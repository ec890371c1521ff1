package pcfile

import (
	"os"
	"strings"

	"github.com/arc-tools/pkgconf/pkg/env"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of an optional pkgconf.yaml /
// .pkgconfrc override file: a user may pin extra search directories or
// disable the "-uninstalled" preference without touching the
// environment.
type fileConfig struct {
	SearchPaths        []string `yaml:"searchPaths"`
	DisableUninstalled bool     `yaml:"disableUninstalled"`
}

// DefaultSearchPaths returns the search path list a bare invocation
// would use, in search order: $PKG_CONFIG_PATH entries first, then any
// directories a found config file adds, then the platform's
// conventional pkgconfig directories.
func DefaultSearchPaths(configPath string) ([]string, error) {
	var paths []string

	if pkgConfigPath := os.Getenv("PKG_CONFIG_PATH"); pkgConfigPath != "" {
		paths = append(paths, filepathSplitList(pkgConfigPath)...)
	}

	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			return nil, err
		}
		if fc != nil {
			paths = append(paths, fc.SearchPaths...)
		}
	}

	paths = append(paths, env.PkgConfigDirs()...)
	return paths, nil
}

func filepathSplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, string(os.PathListSeparator)) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// DefaultConfig builds a Config from the environment and, if present, a
// pkgconf.yaml/.pkgconfrc override file at configPath.
func DefaultConfig(configPath string) (Config, error) {
	paths, err := DefaultSearchPaths(configPath)
	if err != nil {
		return Config{}, err
	}
	disableUninstalled := false
	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			return Config{}, err
		}
		if fc != nil {
			disableUninstalled = fc.DisableUninstalled
		}
	}
	return Config{SearchPaths: paths, DisableUninstalled: disableUninstalled}, nil
}
