package appimage

import (
	"fmt"

	rice "github.com/GeertJohan/go.rice"
)

var resourceBox *rice.Box

// openBox loads the template payload box.
// For go.rice's 'append' mode to work, the call to FindBox() has to be with
// a literal string parameter.
func openBox() {
	var err error
	resourceBox, err = rice.FindBox("resources")
	if err != nil {
		panic(err)
	}
}

// GetResource returns the content of a named template file from the
// resource box.
func GetResource(name string) (string, error) {
	if resourceBox == nil {
		openBox()
	}
	text, err := resourceBox.String(name)
	if err != nil {
		return "", fmt.Errorf("resource '%s' not found", name)
	}
	return text, nil
}

// MustGetResource is GetResource for resources that are compiled in and
// cannot be missing.
func MustGetResource(name string) string {
	text, err := GetResource(name)
	if err != nil {
		panic(err)
	}
	return text
}
