// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package jsonc reads the lenient JSON dialect used by multipool
// configuration files: strict JSON plus // line comments, /* block */
// comments, and trailing commas before a closing bracket or brace.
//
// Normalize converts lenient text to strict JSON; Decode and DecodeFile
// combine normalization with a standard strict decode. Operator-edited
// pool and coin files go through this package, never through
// encoding/json directly.
package jsonc

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Scanner states. Exactly one is active at any position in the input.
const (
	stateNormal = iota
	stateString
	stateLineComment
	stateBlockComment
)

// Normalize converts lenient JSON text into strict JSON text.
//
// It performs a single left-to-right scan that:
//   - strips // comments up to (but not including) the terminating newline;
//   - strips /* ... */ comments including both delimiters;
//   - copies string literals byte-for-byte, so comment openers inside a
//     string are inert and an escaped quote never terminates the string;
//   - drops a comma whose next significant byte is '}' or ']', keeping any
//     whitespace that stood between them.
//
// Trailing-comma elision is part of the same scan, so string content such
// as ", }" is never touched. Normalize never fails: malformed input is
// returned normalized-as-possible and left for the strict decoder to
// reject.
func Normalize(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	// pending holds a comma and any whitespace after it, not yet emitted
	// because the comma must be dropped if a closing bracket follows.
	var pending []byte

	flush := func() {
		out.Write(pending)
		pending = pending[:0]
	}

	state := stateNormal
	for i := 0; i < len(s); i++ {
		c := s[i]

		switch state {
		case stateNormal:
			switch {
			case c == '"':
				flush()
				out.WriteByte(c)
				state = stateString
			case c == '/' && i+1 < len(s) && s[i+1] == '/':
				i++
				state = stateLineComment
			case c == '/' && i+1 < len(s) && s[i+1] == '*':
				i++
				state = stateBlockComment
			case c == ',':
				flush()
				pending = append(pending, c)
			case len(pending) > 0 && isSpace(c):
				pending = append(pending, c)
			case len(pending) > 0 && (c == '}' || c == ']'):
				// drop the buffered comma, keep its whitespace
				out.Write(pending[1:])
				pending = pending[:0]
				out.WriteByte(c)
			default:
				flush()
				out.WriteByte(c)
			}

		case stateString:
			out.WriteByte(c)
			switch {
			case c == '\\' && i+1 < len(s):
				// copy the escape pair whole so \" and \\ never end the string
				out.WriteByte(s[i+1])
				i++
			case c == '"':
				state = stateNormal
			}

		case stateLineComment:
			if c == '\n' {
				if len(pending) > 0 {
					pending = append(pending, c)
				} else {
					out.WriteByte(c)
				}
				state = stateNormal
			}

		case stateBlockComment:
			if c == '*' && i+1 < len(s) && s[i+1] == '/' {
				i++
				state = stateNormal
			}
		}
	}

	flush()

	return out.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Decode normalizes data and decodes the result into v with the standard
// strict JSON decoder. Malformed input surfaces here, not in Normalize.
func Decode(data []byte, v any) error {
	if err := json.Unmarshal([]byte(Normalize(string(data))), v); err != nil {
		return fmt.Errorf("error decoding lenient json: %w", err)
	}

	return nil
}

// DecodeFile reads path and decodes its lenient JSON content into v.
// Errors are wrapped with the file path so operators can find the
// offending document.
func DecodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}

	if err := Decode(data, v); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	return nil
}
