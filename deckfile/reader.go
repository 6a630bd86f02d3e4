// Package deckfile reads deck configuration files.
//
// A deck file is a sequence of card blocks. Each block is a header line
// "name cost value" followed by the five rows of the card's influence grid:
//
//	Security 1 2
//	XXXXX
//	XXIXX
//	XICIX
//	XXIXX
//	XXXXX
//
// Blank lines between blocks are ignored. Grids are written from red's point
// of view; blue receives the same cards with every grid mirrored.
package deckfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"pawnsboard/game"
)

var ErrMalformedDeck = errors.New("malformed deck")

// Decks holds one card list per side, in file order.
type Decks struct {
	Red  []game.Card
	Blue []game.Card
}

// ReadFile reads the deck file at path.
func ReadFile(path string) (Decks, error) {
	f, err := os.Open(path)
	if err != nil {
		return Decks{}, fmt.Errorf("open deck file: %w", err)
	}
	defer f.Close()

	decks, err := Read(f)
	if err != nil {
		return Decks{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Msgf("loaded %d cards", len(decks.Red))
	return decks, nil
}

// Read parses a whole deck. Any malformed block fails the import and no
// cards are returned.
func Read(r io.Reader) (Decks, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		line++
		return strings.TrimRight(scanner.Text(), "\r"), true
	}

	var decks Decks
	for {
		header, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(header) == "" {
			continue
		}
		headerLine := line

		name, cost, value, err := parseHeader(header)
		if err != nil {
			return Decks{}, malformed(headerLine, err)
		}

		rows := make([]string, game.GridSize)
		for i := range rows {
			row, ok := next()
			if !ok {
				return Decks{}, malformed(line, fmt.Errorf("card %s: influence grid has %d of %d rows", name, i, game.GridSize))
			}
			if len(row) != game.GridSize {
				return Decks{}, malformed(line, fmt.Errorf("card %s: row %q is not %d characters long", name, row, game.GridSize))
			}
			rows[i] = row
		}

		grid, err := game.NewInfluenceGrid(rows)
		if err != nil {
			return Decks{}, malformed(headerLine, err)
		}
		red, err := game.NewCard(name, cost, value, grid)
		if err != nil {
			return Decks{}, malformed(headerLine, err)
		}
		blue, err := game.NewCard(name, cost, value, grid.Mirror())
		if err != nil {
			return Decks{}, malformed(headerLine, err)
		}
		decks.Red = append(decks.Red, red)
		decks.Blue = append(decks.Blue, blue)
	}
	if err := scanner.Err(); err != nil {
		return Decks{}, fmt.Errorf("read deck: %w", err)
	}
	return decks, nil
}

func parseHeader(header string) (name string, cost, value int, err error) {
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return "", 0, 0, fmt.Errorf("header %q: want \"name cost value\"", header)
	}
	cost, err = strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("header %q: cost: %w", header, err)
	}
	value, err = strconv.Atoi(fields[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("header %q: value: %w", header, err)
	}
	return fields[0], cost, value, nil
}

func malformed(line int, err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrMalformedDeck, line, err)
}
