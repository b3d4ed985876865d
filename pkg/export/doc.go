// Package export renders a solved arrangement.Arrangement for human
// inspection: a JSON snapshot and an SVG diagram of the virtual screen
// and its displays.
package export
