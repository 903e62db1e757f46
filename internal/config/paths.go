// ABOUTME: Standard filesystem paths for fly configuration
// ABOUTME: Global config under $XDG_CONFIG_HOME/fly; project config as a dotfile in the root

package config

import (
	"os"
	"path/filepath"
)

const appDirName = "fly"

// projectFiles are checked in order; the first that exists wins.
var projectFiles = []string{".fly.yaml", ".fly.yml", ".fly.toml"}

// GlobalDir returns the user-global config directory.
func GlobalDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(".", "."+appDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the project config file under projectRoot, or
// "" when there is none.
func ProjectConfigFile(projectRoot string) string {
	for _, name := range projectFiles {
		path := filepath.Join(projectRoot, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// WatchPaths returns every file whose change should trigger a reload.
func WatchPaths(projectRoot string) []string {
	paths := []string{GlobalConfigFile()}
	for _, name := range projectFiles {
		paths = append(paths, filepath.Join(projectRoot, name))
	}
	return paths
}
