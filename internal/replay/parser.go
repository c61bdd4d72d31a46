// Package replay drives a recorded Connect-Z game from a text file:
// parsing the recording, feeding its moves to the rules engine in file
// order and mapping the result to the documented outcome codes.
package replay

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidFile marks a readable file whose content is not a valid
// game recording.
var ErrInvalidFile = errors.New("invalid file")

// Dimensions is the parsed first line of a recording:
// "<rows> <columns> <winLength>".
type Dimensions struct {
	Rows      int
	Columns   int
	WinLength int
}

// Load reads and parses the recording at path. A missing or unreadable
// file is reported with the read error itself; malformed content wraps
// ErrInvalidFile.
func Load(path string) (Dimensions, []int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dimensions{}, nil, err
	}
	return Parse(data)
}

// Parse splits a recording into its dimensions and its 1-based column
// moves, in file order. Blank lines yield no moves; every other line
// must hold exactly one decimal integer.
func Parse(data []byte) (Dimensions, []int, error) {
	lines := strings.Split(string(data), "\n")

	header := strings.Fields(lines[0])
	if len(header) != 3 {
		return Dimensions{}, nil, fmt.Errorf("%w: dimensions line has %d fields, want 3",
			ErrInvalidFile, len(header))
	}

	var dims Dimensions
	for i, dst := range []*int{&dims.Rows, &dims.Columns, &dims.WinLength} {
		v, err := strconv.Atoi(header[i])
		if err != nil {
			return Dimensions{}, nil, fmt.Errorf("%w: dimension %q is not an integer",
				ErrInvalidFile, header[i])
		}
		*dst = v
	}

	var moves []int
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		col, err := strconv.Atoi(line)
		if err != nil {
			return Dimensions{}, nil, fmt.Errorf("%w: move %q is not an integer",
				ErrInvalidFile, line)
		}
		moves = append(moves, col)
	}

	return dims, moves, nil
}
