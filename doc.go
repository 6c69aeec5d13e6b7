// An AppImage build tool for the ChromaDesk wallpaper changer.
//
// The build pipeline optionally bumps the project's version strings, prepares
// a virtualenv, freezes the application into a single executable with
// PyInstaller, assembles an AppDir with desktop-integration files and icons,
// and optionally packs the AppDir into an AppImage with appimagetool
// (downloading it first when it isn't installed).
//
// See the README.md for usage info.
package appimage
