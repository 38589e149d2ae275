// Package viz draws mazes for the terminal.
//
// Every maze is first laid out as a block matrix ([Layout]) of
// (2*height+1) x (2*width+1) blocks: one block per cell, one per wall between
// cells and one per wall corner. Renderers then paint that matrix:
//
//   - [Renderer]: two terminal columns per block, colored with lipgloss or
//     plain glyphs in mono mode
//   - [Canvas]: Braille mini-map, one dot per block, for mazes too large for
//     the full renderer
//
// # Themes
//
// Three palettes are built in: classic, rotated and mono. [NextTheme] cycles
// through them.
package viz
