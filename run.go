package appimage

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Run parses commandline options and drives the build pipeline top to
// bottom, stopping at the first failing step.
//
// Commandline parameters are:
//   --version-update VER  // Stamp VER into both project version files
//   --build-only          // With --version-update: stop after the update
//   --appimage            // Also pack the AppDir into an AppImage
//   --debug               // Verbose output, echo every external command
//
// The return value is the process exit code: 0 for success (and for
// --help), 1 for any failure.
func Run() int {
	opts, err := ParseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	startLogging(opts.Debug)
	openBox()

	project, err := LoadProject()
	if err != nil {
		logrus.Error(err)
		return 1
	}

	if opts.VersionUpdate != "" {
		if err := UpdateVersion(project, opts.VersionUpdate); err != nil {
			logrus.Error(err)
			return 1
		}
		logrus.Infof("Updated version to %s", opts.VersionUpdate)
		if opts.BuildOnly {
			return 0
		}
	}

	if _, err := os.Stat(project.Icon); err != nil {
		logrus.Errorf("Icon file missing: %s", project.Icon)
		return 1
	}

	ctx, err := PrepareVenv(project)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	if err := InstallDeps(ctx, project, opts.AppImage); err != nil {
		logrus.Error(err)
		return 1
	}
	version, err := ReadProjectVersion(project)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	logrus.Infof("Building %s %s", project.Name, version)

	if err := PrepareAppDir(project); err != nil {
		logrus.Error(err)
		return 1
	}
	if err := BuildExecutable(ctx, project); err != nil {
		logrus.Error(err)
		return 1
	}
	if err := AssembleAppDir(project, version); err != nil {
		logrus.Error(err)
		return 1
	}
	if err := WriteLauncher(project); err != nil {
		logrus.Error(err)
		return 1
	}

	if opts.AppImage {
		artifact, err := CreateAppImage(project, version)
		if err != nil {
			logrus.Errorf("AppImage creation failed: %s", err)
			Cleanup(project)
			return 1
		}
		color.New(color.FgGreen, color.Bold).Printf("Created %s\n", artifact)
	}
	Cleanup(project)
	logrus.Info("Build finished")
	return 0
}
