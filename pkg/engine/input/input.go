// Package input reads key presses from a terminal and maps them to game intents.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	keyCtrlC     = 3
	keyBackspace = 8
	keyEscape    = 0x1b
	keyDelete    = 127
)

// KeyReader decodes single key presses, including arrow-key escape sequences
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps a byte stream
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until a key is available and returns its code: "arrow_up",
// "arrow_down", "arrow_left", "arrow_right", "enter", "escape", "ctrl_c",
// "backspace", or the printable character itself.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == keyEscape:
		return k.readEscape()
	case b == keyCtrlC:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == keyDelete || b == keyBackspace:
		return "backspace", nil
	case b >= 32 && b < 127:
		return string(rune(b)), nil
	default:
		return "", nil
	}
}

// readEscape handles the bytes after ESC. Both CSI (ESC [) and SS3 (ESC O)
// arrow sequences are recognised. A terminal sends a whole sequence in one
// write, so an ESC with nothing buffered behind it is the Esc key itself.
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	if b2 != '[' && b2 != 'O' {
		// Not a sequence; leave the byte for the next read
		if err := k.r.UnreadByte(); err != nil {
			return "", err
		}
		return "escape", nil
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// Terminal reads keys from stdin, switching it to raw mode only for the
// duration of each read so normal output keeps working between reads
type Terminal struct {
	in   *os.File
	keys *KeyReader
}

// NewTerminal creates a key source on the given file (normally os.Stdin)
func NewTerminal(in *os.File) *Terminal {
	return &Terminal{in: in, keys: NewKeyReader(in)}
}

// ReadKey reads one key press. When in is not a terminal the bytes are read as-is.
func (t *Terminal) ReadKey() (string, error) {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return t.keys.ReadKey()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return t.keys.ReadKey()
}
