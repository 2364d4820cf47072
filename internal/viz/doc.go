// Package viz renders sample patterns in the terminal.
//
// [Canvas] draws a thresholded pattern with braille dots, 2x4 per cell.
// [HalfBlocks] draws it in colour, two pixel rows per line. [Viewer] is a
// Bubble Tea model that browses the pattern catalogue at the terminal's
// resolution.
//
// # Key Bindings
//
//	←/→ - Previous/next pattern
//	B   - Toggle braille mode
//	Q   - Quit
package viz
