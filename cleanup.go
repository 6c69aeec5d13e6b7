package appimage

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Cleanup removes PyInstaller's intermediate work directory and the
// generated spec file. The AppDir and the packaged AppImage are the
// deliverables and stay untouched. Cleanup never fails the build.
func Cleanup(project Project) {
	logrus.Debug("Cleaning up build intermediates")
	if err := os.RemoveAll(project.WorkDir); err != nil {
		logrus.Warnf("Unable to remove %s: %s", project.WorkDir, err)
	}
	specFile := project.Executable + ".spec"
	if err := os.Remove(specFile); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("Unable to remove %s: %s", specFile, err)
	}
}
