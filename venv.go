package appimage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// PrepareVenv makes sure the project's virtualenv exists, creating it when
// absent and reusing it otherwise, and returns the execution context that
// stands in for activating it. The returned context is verified: resolving
// python3 through the overlaid PATH must yield the venv's own interpreter.
func PrepareVenv(project Project) (*ExecContext, error) {
	venvDir, err := filepath.Abs(project.VenvDir)
	if err != nil {
		return nil, err
	}
	binDir := filepath.Join(venvDir, "bin")
	python := filepath.Join(binDir, "python3")

	if _, err := os.Stat(python); os.IsNotExist(err) {
		logrus.Infof("Creating virtual environment in %s", project.VenvDir)
		host := &ExecContext{Env: os.Environ()}
		if err := host.Run("python3", "-m", "venv", project.VenvDir); err != nil {
			return nil, fmt.Errorf("creating virtual environment: %w", err)
		}
	} else {
		logrus.Infof("Reusing virtual environment in %s", project.VenvDir)
	}

	ctx := &ExecContext{
		Python: python,
		Pip:    filepath.Join(binDir, "pip"),
		Env: overlayEnv(os.Environ(), StringMap{
			"VIRTUAL_ENV": venvDir,
			"PATH":        binDir + string(os.PathListSeparator) + os.Getenv("PATH"),
		}, "PYTHONHOME"),
	}

	resolved := lookupInPath(binDir+string(os.PathListSeparator)+os.Getenv("PATH"), "python3")
	if resolved != python {
		return nil, fmt.Errorf(
			"virtual environment activation failed: python3 resolves to '%s', expected '%s'",
			resolved, python,
		)
	}
	return ctx, nil
}

// InstallDeps upgrades pip, installs the build tools, and installs the
// project's own dependencies into the virtualenv. The optional extras group
// is only installed when the build is going to package an AppImage. Every
// step is fatal on failure; there are no retries.
func InstallDeps(ctx *ExecContext, project Project, withExtras bool) error {
	logrus.Info("Upgrading pip")
	if err := ctx.Run(ctx.Python, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("upgrading pip: %w", err)
	}
	logrus.Info("Installing build tools")
	if err := ctx.Run(ctx.Pip, "install", "pyinstaller", "build", "wheel"); err != nil {
		return fmt.Errorf("installing build tools: %w", err)
	}
	logrus.Info("Installing project dependencies")
	if err := ctx.Run(ctx.Pip, "install", "."); err != nil {
		return fmt.Errorf("installing project dependencies: %w", err)
	}
	if withExtras {
		logrus.Infof("Installing optional dependencies (%s)", project.Extras)
		if err := ctx.Run(ctx.Pip, "install", ".["+project.Extras+"]"); err != nil {
			return fmt.Errorf("installing optional dependencies: %w", err)
		}
	}
	return nil
}
