package appimage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const projectConfigFilename = "appimage.yml"

// Project describes the application being packaged, plus the paths the build
// works with. A Project is constructed once at startup and passed around
// explicitly; nothing mutates it after that.
type Project struct {
	// Name is the display name used in the desktop entry.
	Name string `yaml:"name"`
	// Package is the Python package directory containing the entry point.
	Package string `yaml:"package"`
	// Executable is the name of the frozen binary and the final AppImage.
	Executable string `yaml:"executable"`
	// ID is the reverse-domain identifier for desktop-integration files.
	ID          string `yaml:"id"`
	GenericName string `yaml:"generic_name"`
	Comment     string `yaml:"comment"`
	Categories  string `yaml:"categories"`
	Keywords    string `yaml:"keywords"`

	// Icon is the source icon (PNG), required for the bundle.
	Icon string `yaml:"icon"`
	// DesktopFile is the hand-written desktop entry in the source tree. It is
	// only informational; a missing file is warned about, not an error.
	DesktopFile string `yaml:"desktop_file"`

	// PyProject and InitFile carry the two version assignments the
	// --version-update flag rewrites.
	PyProject string `yaml:"pyproject"`
	InitFile  string `yaml:"init_file"`

	VenvDir string `yaml:"venv_dir"`
	AppDir  string `yaml:"appdir"`
	WorkDir string `yaml:"work_dir"`
	// Extras is the optional-dependency group installed when packaging.
	Extras string `yaml:"extras"`
}

// NewProject returns the built-in chromadesk project definition.
func NewProject() Project {
	return Project{
		Name:        "ChromaDesk",
		Package:     "chromadesk",
		Executable:  "chromadesk",
		ID:          "io.github.akin2662.chromadesk",
		GenericName: "Wallpaper Changer",
		Comment:     "Daily Bing/custom wallpaper changer for GNOME",
		Categories:  "Utility;DesktopSettings;GNOME;GTK;",
		Keywords:    "wallpaper;background;bing;desktop;",
		Icon:        filepath.Join("data", "icons", "io.github.akin2662.chromadesk.png"),
		DesktopFile: filepath.Join("data", "chromadesk.desktop"),
		PyProject:   "pyproject.toml",
		InitFile:    filepath.Join("chromadesk", "__init__.py"),
		VenvDir:     "venv",
		AppDir:      "ChromaDesk.AppDir",
		WorkDir:     "build",
		Extras:      "notifications",
	}
}

// variables returns the project identity as a template variable map.
func (p Project) variables() StringMap {
	return StringMap{
		"name":        p.Name,
		"genericName": p.GenericName,
		"comment":     p.Comment,
		"executable":  p.Executable,
		"categories":  p.Categories,
		"keywords":    p.Keywords,
	}
}

// LoadProject returns the project definition, with any fields found in an
// appimage.yml in the working directory overriding the built-in defaults.
func LoadProject() (Project, error) {
	project := NewProject()
	content, err := os.ReadFile(projectConfigFilename)
	if os.IsNotExist(err) {
		return project, nil
	}
	if err != nil {
		return project, err
	}
	if err := yaml.Unmarshal(content, &project); err != nil {
		return project, fmt.Errorf("unable to parse %s: %w", projectConfigFilename, err)
	}
	return project, nil
}
