package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sandeepkv93/todoterm/internal/model"
)

const separator = ":"

// ParseError marks a well-formed line whose state token is unknown. The
// file is treated as corrupt rather than guessed at.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("storage: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode reads one STATE:TEXT item per line. TEXT is everything after the
// first colon. Lines without a colon or with an empty side are skipped.
// Lines have no length limit, so anything Encode wrote can be read back.
func Decode(r io.Reader) ([]model.Item, error) {
	out := make([]model.Item, 0)
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read items: %w", readErr)
		}
		if raw == "" && errors.Is(readErr, io.EOF) {
			break
		}
		lineNo++
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		item, ok, err := decodeLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
		if ok {
			out = append(out, item)
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
	}
	return out, nil
}

// decodeLine reports ok=false for lines that carry no item.
func decodeLine(line string) (model.Item, bool, error) {
	rawState, text, ok := strings.Cut(line, separator)
	if !ok || rawState == "" || text == "" {
		return model.Item{}, false, nil
	}
	state, err := model.ParseState(rawState)
	if err != nil {
		return model.Item{}, false, err
	}
	return model.Item{Text: text, Completed: state.Completed()}, true, nil
}

func Encode(w io.Writer, items []model.Item) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		if _, err := fmt.Fprintf(bw, "%s%s%s\n", it.State(), separator, it.Text); err != nil {
			return fmt.Errorf("write items: %w", err)
		}
	}
	return bw.Flush()
}
