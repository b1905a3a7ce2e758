// Package paths locates droidspec's user files and the files of a Flutter
// Android project.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// Name used for directory and file naming.
	appName = "droidspec"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the user configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/droidspec/config.yml or ~/.config/droidspec/config.yml
//	macOS:   ~/Library/Application Support/droidspec/config.yml
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yml")
}

// Project holds the directories of a Flutter app's Android build
type Project struct {
	ModuleDir  string // android/app
	RootDir    string // android
	FlutterDir string // Flutter project root
}

// ForModule derives the project layout from the application module
// directory. flutterSource is relative to moduleDir.
func ForModule(moduleDir, flutterSource string) Project {
	moduleDir = filepath.Clean(moduleDir)
	flutterDir := flutterSource
	if !filepath.IsAbs(flutterDir) {
		flutterDir = filepath.Join(moduleDir, flutterSource)
	}
	return Project{
		ModuleDir:  moduleDir,
		RootDir:    filepath.Dir(moduleDir),
		FlutterDir: filepath.Clean(flutterDir),
	}
}

// RootFile resolves name against the root project, like rootProject.file()
func (p Project) RootFile(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.RootDir, name)
}

// ModuleFile resolves name against the application module, like file()
func (p Project) ModuleFile(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.ModuleDir, name)
}
