package appimage

import (
	"fmt"
	"os"
	"regexp"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// ValidVersion reports whether v is a plain three-component version number.
func ValidVersion(v string) bool {
	return versionPattern.MatchString(v)
}

// assignmentPattern matches a line-anchored `key = "..."` assignment,
// tolerating whitespace variations around the equals sign. Commented-out or
// multi-line assignments don't match.
func assignmentPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^(` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*")([^"]*)(")`)
}

// PatchAssignment rewrites the value of a `key = "..."` assignment in the
// given file, keeping everything else byte for byte. A file without a
// matching assignment line is an error, never a silent no-op.
func PatchAssignment(path, key, value string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	pattern := assignmentPattern(key)
	if !pattern.Match(content) {
		return fmt.Errorf(`no %s = "..." assignment found in %s`, key, path)
	}
	patched := pattern.ReplaceAll(content, []byte("${1}"+value+"${3}"))
	return os.WriteFile(path, patched, info.Mode().Perm())
}

// ReadAssignment returns the current value of a `key = "..."` assignment in
// the given file.
func ReadAssignment(path, key string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	match := assignmentPattern(key).FindSubmatch(content)
	if match == nil {
		return "", fmt.Errorf(`no %s = "..." assignment found in %s`, key, path)
	}
	return string(match[2]), nil
}

// UpdateVersion stamps the given version into both project files carrying a
// version assignment. The version shape and the existence of both files are
// checked before anything is written, so a failure here means no file was
// touched.
func UpdateVersion(project Project, version string) error {
	if !ValidVersion(version) {
		return fmt.Errorf("invalid version '%s', expected format N.N.N", version)
	}
	targets := []struct{ path, key string }{
		{project.PyProject, "version"},
		{project.InitFile, "__version__"},
	}
	for _, target := range targets {
		if _, err := os.Stat(target.path); err != nil {
			return fmt.Errorf("version file missing: %s", target.path)
		}
	}
	for _, target := range targets {
		if err := PatchAssignment(target.path, target.key, version); err != nil {
			return err
		}
	}
	return nil
}

// ReadProjectVersion returns the version currently recorded in the package's
// __init__.py, used to name the final artifact.
func ReadProjectVersion(project Project) (string, error) {
	return ReadAssignment(project.InitFile, "__version__")
}
