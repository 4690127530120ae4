package input

import (
	"bufio"
	"io"
	"unicode/utf8"
)

const (
	esc   = 0x1b
	ctrlC = 0x03
)

// Key is a decoded key press, named the way bubbletea names them.
type Key string

func (k Key) String() string { return string(k) }

var arrows = map[byte]Key{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
}

// Decoder turns a raw terminal byte stream into key presses. It understands
// CSI and SS3 arrow sequences, control bytes and UTF-8 runes.
type Decoder struct {
	r *bufio.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next blocks until a whole key is available. It returns io.EOF once the
// stream is exhausted.
func (d *Decoder) Next() (Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == esc:
		return d.escape(), nil
	case b == ctrlC:
		return "ctrl+c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == '\t':
		return "tab", nil
	case b == 0x7f:
		return "backspace", nil
	case b >= 0x01 && b <= 0x1a:
		return Key("ctrl+" + string(rune('a'+b-1))), nil
	case b < 0x20:
		return Key(rune(b)), nil
	case b < utf8.RuneSelf:
		return Key(rune(b)), nil
	}

	if err := d.r.UnreadByte(); err != nil {
		return "", err
	}
	r, _, err := d.r.ReadRune()
	if err != nil {
		return "", err
	}
	return Key(r), nil
}

func (d *Decoder) escape() Key {
	intro, err := d.r.Peek(1)
	if err != nil || (intro[0] != '[' && intro[0] != 'O') {
		return "esc"
	}
	seq, err := d.r.Peek(2)
	if err != nil {
		return "esc"
	}
	if k, ok := arrows[seq[1]]; ok {
		d.r.Discard(2)
		return k
	}
	return "esc"
}
