// Package viz renders physics sets, mover names and spring previews for the
// terminal. Output is plain strings styled with lipgloss; nothing here owns
// the terminal or runs a render loop.
package viz
