package appimage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// BuildExecutable freezes the application into a single windowed executable
// with PyInstaller, placing it directly into the AppDir's usr/bin. The
// intermediate build files go into the project's work directory.
//
// PyInstaller exiting 0 is not trusted on its own: the expected binary must
// actually exist afterwards, otherwise the build failed.
func BuildExecutable(ctx *ExecContext, project Project) error {
	logrus.Infof("Freezing %s with PyInstaller", project.Name)
	dataSep := string(os.PathListSeparator)
	err := ctx.Run(ctx.Python, "-m", "PyInstaller",
		"--noconfirm",
		"--name", project.Executable,
		"--onefile",
		"--windowed",
		"--add-data", project.Icon+dataSep+filepath.Dir(project.Icon),
		"--add-data", "data"+dataSep+"data",
		"--add-data", filepath.Join(project.Package, "ui", "templates")+dataSep+filepath.Join(project.Package, "ui", "templates"),
		"--icon", project.Icon,
		"--distpath", filepath.Join(project.AppDir, "usr", "bin"),
		"--workpath", project.WorkDir,
		filepath.Join(project.Package, "main.py"),
	)
	if err != nil {
		return fmt.Errorf("pyinstaller: %w", err)
	}

	binary := filepath.Join(project.AppDir, "usr", "bin", project.Executable)
	if _, err := os.Stat(binary); err != nil {
		return fmt.Errorf("pyinstaller reported success but '%s' does not exist", binary)
	}
	if err := os.Chmod(binary, 0755); err != nil {
		return err
	}
	logrus.Infof("Built %s", binary)
	return nil
}
