package appimage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	desktopTemplateName = "desktop-entry.template"
	apprunTemplateName  = "apprun.template"
)

// hicolorIconDir is where the freedesktop icon theme expects the app icon
// inside the AppDir.
func hicolorIconDir(project Project) string {
	return filepath.Join(project.AppDir, "usr", "share", "icons", "hicolor", "256x256", "apps")
}

// PrepareAppDir deletes any previous AppDir and creates the directory layout
// appimagetool expects. Destructive on purpose: the bundle is rebuilt from
// scratch on every run.
func PrepareAppDir(project Project) error {
	if err := os.RemoveAll(project.AppDir); err != nil {
		return fmt.Errorf("removing old AppDir: %w", err)
	}
	for _, dir := range []string{
		filepath.Join(project.AppDir, "usr", "bin"),
		filepath.Join(project.AppDir, "usr", "lib"),
		filepath.Join(project.AppDir, "usr", "share", "applications"),
		hicolorIconDir(project),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	logrus.Infof("Created %s", project.AppDir)
	return nil
}

// AssembleAppDir fills the prepared AppDir with the desktop-integration
// files: the generated desktop entry (in triplicate, because appimagetool
// wants its own root-level copy named after the executable), the icons, and
// the .DirIcon symlink.
func AssembleAppDir(project Project, version string) error {
	entry := ExpandVariables(MustGetResource(desktopTemplateName), MergeVariables(
		project.variables(),
		StringMap{"version": version},
	))
	if _, err := os.Stat(project.DesktopFile); err != nil {
		logrus.Warnf("Source desktop file %s not found, using generated entry only", project.DesktopFile)
	}
	for _, path := range []string{
		filepath.Join(project.AppDir, project.ID+".desktop"),
		filepath.Join(project.AppDir, "usr", "share", "applications", project.ID+".desktop"),
		filepath.Join(project.AppDir, project.Executable+".desktop"),
	} {
		if err := os.WriteFile(path, []byte(entry), 0644); err != nil {
			return fmt.Errorf("writing desktop entry: %w", err)
		}
	}

	if _, err := os.Stat(project.Icon); err != nil {
		return fmt.Errorf("icon file missing: %s", project.Icon)
	}
	rootIcon := filepath.Join(project.AppDir, project.Executable+".png")
	themeIcon := filepath.Join(hicolorIconDir(project), project.ID+".png")
	for _, target := range []string{rootIcon, themeIcon} {
		if err := copyFile(project.Icon, target, 0644); err != nil {
			return fmt.Errorf("copying icon: %w", err)
		}
	}
	if err := os.Symlink(project.Executable+".png", filepath.Join(project.AppDir, ".DirIcon")); err != nil {
		return fmt.Errorf("creating .DirIcon link: %w", err)
	}
	logrus.Info("Assembled desktop entry and icons")
	return nil
}

// WriteLauncher generates the AppRun script at the AppDir root. At package
// run time it prepends the bundle's usr/bin and usr/lib to the search paths,
// extends XDG_DATA_DIRS with the bundle's usr/share, and execs the real
// binary with all arguments forwarded.
func WriteLauncher(project Project) error {
	script := ExpandVariables(MustGetResource(apprunTemplateName), project.variables())
	apprun := filepath.Join(project.AppDir, "AppRun")
	if err := os.WriteFile(apprun, []byte(script), 0755); err != nil {
		return fmt.Errorf("writing AppRun: %w", err)
	}
	logrus.Infof("Wrote launcher %s", apprun)
	return nil
}

// copyFile copies a regular file. Parent directories must already exist.
func copyFile(src, dst string, mode os.FileMode) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, content, mode)
}
