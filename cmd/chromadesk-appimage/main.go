package main

import (
	"os"

	appimage "github.com/akin2662/chromadesk-appimage"
)

func main() {
	os.Exit(appimage.Run())
}
