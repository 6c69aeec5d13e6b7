package appimage

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

// ErrHelp is returned by ParseOptions after usage help has been printed.
var ErrHelp = errors.New("help shown")

// Options is the build configuration parsed from the command line. It is
// constructed once per run and not modified afterwards.
type Options struct {
	VersionUpdate string `long:"version-update" value-name:"VER" description:"Update the project version strings to VER (format N.N.N) before building"`
	BuildOnly     bool   `long:"build-only" description:"Together with --version-update: stop after the version update"`
	AppImage      bool   `long:"appimage" description:"Pack the AppDir into an AppImage after building"`
	Debug         bool   `long:"debug" description:"Verbose output, echo every external command"`
}

// ParseOptions parses the given argument list (without the program name).
// Unknown flags and stray positional arguments are errors, and usage help is
// printed for them. When help itself was requested, the help text goes to
// stdout and ErrHelp is returned.
func ParseOptions(args []string) (*Options, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			return nil, ErrHelp
		}
		parser.WriteHelp(os.Stderr)
		return nil, err
	}
	if len(rest) > 0 {
		parser.WriteHelp(os.Stderr)
		return nil, fmt.Errorf("unexpected argument: '%s'", rest[0])
	}
	return opts, nil
}
