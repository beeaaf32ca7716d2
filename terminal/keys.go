//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package terminal

import (
	"fmt"
	"io"

	tonne "github.com/timburks/tonne/types"
)

// A Decoder turns terminal input into key events.
// A read that returns no bytes and no error is treated as a timeout.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until one key is available and returns it.
// Unrecognized or truncated escape sequences decode as KeyEscape.
func (d *Decoder) ReadKey() (tonne.Event, error) {
	var c byte
	for {
		b, ok, err := d.readByte()
		if err != nil {
			return tonne.Event{}, fmt.Errorf("read: %w", err)
		}
		if ok {
			c = b
			break
		}
	}
	if c != tonne.KeyEsc {
		return tonne.Event{Key: tonne.KeyRune, Ch: c}, nil
	}
	return d.readEscape(), nil
}

func (d *Decoder) readEscape() tonne.Event {
	escape := tonne.Event{Key: tonne.KeyEscape, Ch: tonne.KeyEsc}

	var seq [3]byte
	for i := 0; i < 2; i++ {
		b, ok, err := d.readByte()
		if err != nil || !ok {
			return escape
		}
		seq[i] = b
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			b, ok, err := d.readByte()
			if err != nil || !ok {
				return escape
			}
			seq[2] = b
			if seq[2] != '~' {
				return escape
			}
			switch seq[1] {
			case '1', '7':
				return tonne.Event{Key: tonne.KeyHome}
			case '3':
				return tonne.Event{Key: tonne.KeyDelete}
			case '4', '8':
				return tonne.Event{Key: tonne.KeyEnd}
			case '5':
				return tonne.Event{Key: tonne.KeyPgup}
			case '6':
				return tonne.Event{Key: tonne.KeyPgdn}
			}
			return escape
		}
		switch seq[1] {
		case 'A':
			return tonne.Event{Key: tonne.KeyArrowUp}
		case 'B':
			return tonne.Event{Key: tonne.KeyArrowDown}
		case 'C':
			return tonne.Event{Key: tonne.KeyArrowRight}
		case 'D':
			return tonne.Event{Key: tonne.KeyArrowLeft}
		case 'H':
			return tonne.Event{Key: tonne.KeyHome}
		case 'F':
			return tonne.Event{Key: tonne.KeyEnd}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return tonne.Event{Key: tonne.KeyHome}
		case 'F':
			return tonne.Event{Key: tonne.KeyEnd}
		}
	}
	return escape
}

// readByte reads a single byte. ok is false on timeout.
func (d *Decoder) readByte() (c byte, ok bool, err error) {
	var buf [1]byte
	n, err := d.r.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	return 0, false, err
}
