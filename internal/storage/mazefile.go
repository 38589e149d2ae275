package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/amazeing/internal/maze"
)

var ErrMalformed = errors.New("storage: malformed maze file")

// Snapshot is everything written to a maze file.
type Snapshot struct {
	Grid  *maze.Grid
	Entry maze.Coord
	Exit  maze.Coord
	// Path is the solution as N/E/S/W letters.
	Path string
}

const hexDigits = "0123456789ABCDEF"

// WriteMaze writes one uppercase hex digit per cell, one line per row, then
// a blank line, the entry, the exit and the path.
func WriteMaze(w io.Writer, s *Snapshot) error {
	bw := bufio.NewWriter(w)
	g := s.Grid
	line := make([]byte, g.Width()+1)
	line[g.Width()] = '\n'
	for y := 0; y < g.Height(); y++ {
		for x, c := range g.Row(y) {
			line[x] = hexDigits[c&maze.Closed]
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	fmt.Fprintf(bw, "\n%s\n%s\n%s\n", s.Entry, s.Exit, s.Path)
	return bw.Flush()
}

// ReadMaze parses the format written by WriteMaze.
func ReadMaze(r io.Reader) (*Snapshot, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<22)

	var rows [][]maze.Cell
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			break
		}
		if len(rows) > 0 && len(text) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, expected %d", ErrMalformed, lineNo, len(text), len(rows[0]))
		}
		row := make([]maze.Cell, len(text))
		for i := 0; i < len(text); i++ {
			v := strings.IndexByte(hexDigits, upper(text[i]))
			if v < 0 {
				return nil, fmt.Errorf("%w: line %d: %q is not a hex digit", ErrMalformed, lineNo, text[i])
			}
			row[i] = maze.Cell(v)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no grid rows", ErrMalformed)
	}
	grid, err := maze.FromCells(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: missing %s", ErrMalformed, what)
		}
		lineNo++
		return strings.TrimSpace(sc.Text()), nil
	}

	snap := &Snapshot{Grid: grid}
	for _, field := range []struct {
		name string
		dst  *maze.Coord
	}{{"entry", &snap.Entry}, {"exit", &snap.Exit}} {
		text, err := next(field.name)
		if err != nil {
			return nil, err
		}
		c, err := maze.ParseCoord(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
		}
		if !grid.Contains(c) {
			return nil, fmt.Errorf("%w: line %d: %s %v outside %dx%d grid", ErrMalformed, lineNo, field.name, c, grid.Width(), grid.Height())
		}
		*field.dst = c
	}

	// the path line is empty when no solution exists
	if sc.Scan() {
		snap.Path = strings.TrimSpace(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'f' {
		return b - 'a' + 'A'
	}
	return b
}

// SaveFile writes a snapshot to path, replacing any existing file.
func SaveFile(path string, s *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteMaze(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMaze(f)
}
