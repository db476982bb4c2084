// SPDX-License-Identifier: MIT

// Package history persists the Transition log of a run as flat text:
// one "transporter,node,unloaded,loaded" line per Transition, in history
// order, each newline-terminated.
package history

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/haulsim/transport"
)

// FileName returns the result file name for a run name.
func FileName(name string) string {
	return "result_" + name + ".txt"
}

// Write emits one line per Transition to w.
func Write(w io.Writer, transitions []transport.Transition) error {
	bw := bufio.NewWriter(w)
	for _, t := range transitions {
		if _, err := bw.WriteString(t.String() + "\n"); err != nil {
			return fmt.Errorf("history: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("history: flush: %w", err)
	}

	return nil
}

// WriteFile writes transitions to dir/result_<name>.txt, creating dir when
// missing, and returns the file path. An existing file is truncated.
func WriteFile(dir, name string, transitions []transport.Transition) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("history: %w", err)
	}
	path := filepath.Join(dir, FileName(name))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("history: %w", err)
	}
	if err = Write(f, transitions); err != nil {
		_ = f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("history: close %s: %w", path, err)
	}

	return path, nil
}

// Read parses a result stream back into Transitions. Blank lines are skipped.
func Read(r io.Reader) ([]transport.Transition, error) {
	var out []transport.Transition
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var t transport.Transition
		if err := t.UnmarshalText(sc.Bytes()); err != nil {
			return nil, fmt.Errorf("history: line %d: %w", line, err)
		}
		out = append(out, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("history: read: %w", err)
	}

	return out, nil
}

// ReadFile parses the result file at path.
func ReadFile(path string) ([]transport.Transition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	defer f.Close()

	return Read(f)
}
