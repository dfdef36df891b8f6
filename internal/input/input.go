// Package input turns the command-line argument into message bytes.
package input

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Stdin is the argument that selects reading the hex string from stdin.
const Stdin = "-"

// MaxStdinBytes bounds how much hex text is read from stdin.
const MaxStdinBytes = 16 * 1024 * 1024

// HexDecodeError wraps the hex decoder's error and prints it unchanged.
type HexDecodeError struct {
	Err error
}

func (e *HexDecodeError) Error() string {
	return e.Err.Error()
}

func (e *HexDecodeError) Unwrap() error {
	return e.Err
}

// Normalize trims surrounding whitespace and one optional 0x/0X prefix.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return s
}

// DecodeHex decodes a case-insensitive hex string after Normalize.
func DecodeHex(raw string) ([]byte, error) {
	b, err := hex.DecodeString(Normalize(raw))
	if err != nil {
		return nil, &HexDecodeError{Err: err}
	}
	return b, nil
}

// Resolve returns arg, or the contents of stdin when arg is Stdin.
func Resolve(arg string, stdin io.Reader) (string, error) {
	if arg != Stdin {
		return arg, nil
	}
	data, err := io.ReadAll(io.LimitReader(stdin, MaxStdinBytes+1))
	if err != nil {
		return "", fmt.Errorf("input: read stdin: %w", err)
	}
	if len(data) > MaxStdinBytes {
		return "", fmt.Errorf("input: stdin exceeds %d bytes", MaxStdinBytes)
	}
	return string(data), nil
}
