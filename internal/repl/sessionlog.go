package repl

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/mgreenly/ikigai/internal/input"
)

// logEntry is one JSON-lines record in the session log: a timestamp, an
// action kind, and an optional rune payload for InsertCodepoint. Used for
// crash inspection and `ikigai --replay`.
type logEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	Rune      string    `json:"rune,omitempty"`
}

var actionKindNames = map[input.ActionKind]string{
	input.Unknown:         "unknown",
	input.InsertCodepoint: "insert_codepoint",
	input.Newline:         "newline",
	input.Backspace:       "backspace",
	input.Delete:          "delete",
	input.Left:            "left",
	input.Right:           "right",
	input.Up:              "up",
	input.Down:            "down",
	input.Submit:          "submit",
	input.Quit:            "quit",
}

// sessionLog appends a JSON-lines record for every applied action.
type sessionLog struct {
	mu  sync.Mutex
	w   *bufio.Writer
	enc *json.Encoder
}

func newSessionLog(w io.Writer) *sessionLog {
	bw := bufio.NewWriter(w)
	return &sessionLog{w: bw, enc: json.NewEncoder(bw)}
}

func (l *sessionLog) record(a input.Action) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := logEntry{Timestamp: time.Now(), Kind: actionKindNames[a.Kind]}
	if a.Kind == input.InsertCodepoint {
		entry.Rune = string(a.Rune)
	}
	_ = l.enc.Encode(entry)
	_ = l.w.Flush()
}

// ReplayActions reads a JSON-lines session log from r and returns the
// decoded action sequence, used by `ikigai --replay` to rebuild the
// submitted scrollback lines without reading a real TTY.
func ReplayActions(r io.Reader) ([]input.Action, error) {
	var actions []input.Action
	dec := json.NewDecoder(r)
	for dec.More() {
		var entry logEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, err
		}
		kind := input.Unknown
		for k, name := range actionKindNames {
			if name == entry.Kind {
				kind = k
				break
			}
		}
		action := input.Action{Kind: kind}
		if kind == input.InsertCodepoint {
			r := []rune(entry.Rune)
			if len(r) > 0 {
				action.Rune = r[0]
			}
		}
		actions = append(actions, action)
	}
	return actions, nil
}
