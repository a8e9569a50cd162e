package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrMalformedLine is returned for a script line with an empty name or message
var ErrMalformedLine = errors.New("malformed script line")

const (
	fieldSeparator = "|"
	commentPrefix  = "#"
)

// Message is one incoming chat line
type Message struct {
	Name  string
	Color string
	Text  string
}

// ParseLine reads one script line
//
//	name|color|message
//	name|message
//	message
//
// The message field keeps any further separators. Blank and comment lines report ok=false
func ParseLine(line, defaultName string) (msg Message, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
		return Message{}, false, nil
	}

	fields := strings.SplitN(trimmed, fieldSeparator, 3)
	switch len(fields) {
	case 1:
		msg = Message{Name: defaultName, Text: fields[0]}
	case 2:
		msg = Message{Name: fields[0], Text: fields[1]}
	default:
		msg = Message{Name: fields[0], Color: fields[1], Text: fields[2]}
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Color = strings.TrimSpace(msg.Color)
	msg.Text = strings.TrimSpace(msg.Text)
	if msg.Name == "" || msg.Text == "" {
		return Message{}, false, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	return msg, true, nil
}

// ReadScript parses every line of r, failing on the first malformed line
func ReadScript(r io.Reader, defaultName string) ([]Message, error) {
	var msgs []Message
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		msg, ok, err := ParseLine(scanner.Text(), defaultName)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if ok {
			msgs = append(msgs, msg)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return msgs, nil
}

// Replay sends msgs to out, waiting interval before each one
// Returns ctx.Err() when cancelled before all messages were delivered
func Replay(ctx context.Context, msgs []Message, interval time.Duration, out chan<- Message) error {
	ticker := time.NewTicker(max(interval, time.Millisecond))
	defer ticker.Stop()

	for _, msg := range msgs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- msg:
		}
	}
	return nil
}
