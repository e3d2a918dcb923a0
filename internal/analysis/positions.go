package analysis

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-search-go/internal/engine"
	"github.com/lgbarn/chess-search-go/internal/errors"
)

// Entry is one position read from a positions file.
type Entry struct {
	Position engine.Position
	Label    string
	File     string
	Line     int
}

// ReadPositions reads one FEN per line. Blank lines and lines starting with
// '#' are skipped; text after a ';' labels the position. The first invalid
// FEN stops reading and is returned as a *errors.PositionError.
func ReadPositions(r io.Reader, file string) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fen, label, _ := strings.Cut(text, ";")
		fen = strings.TrimSpace(fen)
		label = strings.TrimSpace(label)

		pos, err := engine.ParseFEN(fen)
		if err != nil {
			return nil, &errors.PositionError{
				Err:   err,
				Index: len(entries) + 1,
				Label: label,
				FEN:   fen,
				File:  file,
				Line:  lineNum,
			}
		}
		entries = append(entries, Entry{Position: pos, Label: label, File: file, Line: lineNum})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", file)
	}
	return entries, nil
}
