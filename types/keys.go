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
package types

// A Key identifies a logical key. Ordinary bytes, printable or not,
// arrive as KeyRune with the byte in Event.Ch.
type Key uint16

const (
	KeyRune Key = iota
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft
	KeyHome
	KeyEnd
	KeyDelete
	KeyPgup
	KeyPgdn
)

// Bytes with special meaning to the commander.
const (
	KeyEsc       byte = 0x1b
	KeyEnter     byte = '\r'
	KeyBackspace byte = 0x7f
)

// An Event is one decoded keypress.
type Event struct {
	Key Key
	Ch  byte
}

// CtrlKey returns the byte produced by pressing Ctrl with k.
func CtrlKey(k byte) byte {
	return k & 0x1f
}

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEscape:
		return "escape"
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyArrowRight:
		return "right"
	case KeyArrowLeft:
		return "left"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyDelete:
		return "delete"
	case KeyPgup:
		return "page-up"
	case KeyPgdn:
		return "page-down"
	default:
		return "unknown"
	}
}
