package appimage

import (
	"os"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const logFilename = "build.log"

// startLogging sets up colored, leveled terminal output and mirrors every
// message uncolored into the build log file.
func startLogging(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.AddHook(lfshook.NewHook(logFilename, &logrus.TextFormatter{
		DisableColors: true,
	}))
}
