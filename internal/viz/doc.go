// Package viz draws functions and numerical traces in the terminal.
//
//   - [Canvas]: Braille dot canvas
//   - [Plotter]: world-to-canvas mapping with clipping
//   - [Scene]: a function plus the records or segments of one run
//   - [Replay]: Bubble Tea model that steps through a scene
//
// # Key Bindings
//
//	Space     - Play/Pause
//	Left/H/P  - Previous step
//	Right/L/N - Next step
//	G / g     - Last / first step
//	Q         - Quit
package viz
