// Package internal contains the SDL runtime behind the navstack facade:
// window and renderer setup, the SDL canvas, input translation, theming and
// logging. Types and functions in this package are not part of the public API.
package internal
