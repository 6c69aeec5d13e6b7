package appimage

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const appImageToolURL = "https://github.com/AppImage/AppImageKit/releases/download/continuous/appimagetool-%s.AppImage"

// archName returns the machine name appimagetool uses for the host
// architecture.
func archName() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "arm":
		return "armhf"
	case "386":
		return "i686"
	default:
		return runtime.GOARCH
	}
}

// appImageTool is a handle on the packaging tool binary: either one already
// installed on $PATH, or a downloaded temporary file. release() deletes the
// temporary copy and is a no-op for an installed tool.
type appImageTool struct {
	path      string
	temporary bool
}

func (t *appImageTool) release() {
	if t.temporary {
		os.Remove(t.path)
	}
}

// findAppImageTool locates appimagetool, preferring one installed on $PATH
// and falling back to downloading the pinned release. On success the caller
// owns the handle and must release() it when done.
func findAppImageTool(downloadURL string) (*appImageTool, error) {
	if path, err := exec.LookPath("appimagetool"); err == nil && unix.Access(path, unix.X_OK) == nil {
		logrus.Debugf("Using appimagetool from %s", path)
		return &appImageTool{path: path}, nil
	}
	logrus.Info("appimagetool not found on PATH, downloading it")
	path, err := downloadTool(downloadURL)
	if err != nil {
		return nil, err
	}
	return &appImageTool{path: path, temporary: true}, nil
}

// downloadTool fetches the appimagetool release into a temporary file and
// marks it executable. The file is removed again on every failure path and
// on interruption; only on success does ownership pass to the caller.
func downloadTool(url string) (string, error) {
	tmp, err := os.CreateTemp("", "appimagetool-*.AppImage")
	if err != nil {
		return "", err
	}
	path := tmp.Name()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	done := make(chan struct{})
	go func() {
		select {
		case <-interrupted:
			os.Remove(path)
			os.Exit(1)
		case <-done:
		}
	}()
	defer func() {
		signal.Stop(interrupted)
		close(done)
	}()

	cleanup := func(err error) (string, error) {
		tmp.Close()
		os.Remove(path)
		return "", err
	}
	logrus.Debugf("Downloading %s", url)
	resp, err := http.Get(url)
	if err != nil {
		return cleanup(fmt.Errorf("downloading appimagetool: %w", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return cleanup(fmt.Errorf("downloading appimagetool: %s", resp.Status))
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return cleanup(fmt.Errorf("downloading appimagetool: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := os.Chmod(path, 0755); err != nil {
		return cleanup(err)
	}
	return path, nil
}

// CreateAppImage packs the AppDir into an executable
// <executable>-<version>-<arch>.AppImage in the working directory. Failures
// are returned rather than fatal here; the pipeline decides whether
// packaging was required for this run.
func CreateAppImage(project Project, version string) (string, error) {
	tool, err := findAppImageTool(fmt.Sprintf(appImageToolURL, archName()))
	if err != nil {
		return "", err
	}
	defer tool.release()

	output := fmt.Sprintf("%s-%s-%s.AppImage", project.Executable, version, archName())
	logrus.Infof("Packing %s into %s", project.AppDir, output)
	cmd := exec.Command(tool.path, project.AppDir, output)
	cmd.Env = overlayEnv(os.Environ(), StringMap{"ARCH": archName()})
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			logrus.Error(string(out))
		}
		return "", fmt.Errorf("appimagetool: %w", err)
	}
	if err := os.Chmod(output, 0755); err != nil {
		return "", err
	}
	return output, nil
}
