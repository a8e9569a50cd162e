// Package command parses viewer chat lines into board commands
package command

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
)

// coordSeparators may wrap numeric tokens and split the coordinate pair
const coordSeparators = ",/"

// SetCommand is a validated request to set one cell
type SetCommand struct {
	Cell  core.Cell
	Color core.Color
}

// Parse turns a chat line into a SetCommand for an n×n grid
// Returns false for anything that is not a well-formed, in-range command;
// such lines are ordinary chat
func Parse(text string, n int) (SetCommand, bool) {
	body, ok := stripKeyword(text)
	if !ok {
		return SetCommand{}, false
	}

	tokens := strings.Fields(body)

	var (
		cell     core.Cell
		colorTok string
	)
	switch len(tokens) {
	case 2:
		// set 2,2 red
		cell = parsePair(tokens[0])
		colorTok = tokens[1]
	case 3:
		// set 2 2 red
		cell = core.Cell{Col: parseCoord(tokens[0]), Row: parseCoord(tokens[1])}
		colorTok = tokens[2]
	default:
		return SetCommand{}, false
	}

	color, ok := core.ParseColor(colorTok)
	if !ok {
		return SetCommand{}, false
	}

	if !cell.InBounds(n) {
		return SetCommand{}, false
	}

	return SetCommand{Cell: cell, Color: color}, true
}

// stripKeyword removes the leading keyword and the whitespace after it
func stripKeyword(text string) (string, bool) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	kw := constants.CommandKeyword
	if len(text) <= len(kw) || !strings.EqualFold(text[:len(kw)], kw) {
		return "", false
	}

	rest := text[len(kw):]
	if !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	return rest, true
}

// parsePair reads "col,row" or "col/row"
func parsePair(tok string) core.Cell {
	tok = strings.Trim(tok, coordSeparators)
	tok = strings.ReplaceAll(tok, ",", "/")

	parts := strings.SplitN(tok, "/", 2)
	if len(parts) != 2 {
		return core.Cell{}
	}
	return core.Cell{Col: atoi(parts[0]), Row: atoi(parts[1])}
}

// parseCoord reads a single coordinate, tolerating stray separators
func parseCoord(tok string) int {
	return atoi(strings.Trim(tok, coordSeparators))
}

// atoi yields 0 on failure, which every range check rejects
func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
