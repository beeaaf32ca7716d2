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
package screen

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/timburks/tonne/terminal"
	tonne "github.com/timburks/tonne/types"
)

const Version = "0.0.1"

// MessageTimeout is how long a status message stays on the message bar.
const MessageTimeout = 5 * time.Second

// The Screen draws the state of an Editor.
// Each frame is collected in one buffer and written with a single call.
type Screen struct {
	out io.Writer
	Now func() time.Time
}

func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out, Now: time.Now}
}

func (s *Screen) Render(e tonne.Editor) error {
	e.Scroll()

	var ab bytes.Buffer
	ab.WriteString(terminal.HideCursor)
	ab.WriteString(terminal.CursorHome)
	s.renderRows(&ab, e)
	s.renderInfoBar(&ab, e)
	s.renderMessageBar(&ab, e)

	cursor := e.GetCursor()
	offset := e.GetOffset()
	ab.WriteString(terminal.MoveCursor(cursor.Row-offset.Rows+1, e.GetRenderCol()-offset.Cols+1))
	ab.WriteString(terminal.ShowCursor)

	if _, err := s.out.Write(ab.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Clear erases the screen and homes the cursor.
func (s *Screen) Clear() error {
	_, err := io.WriteString(s.out, terminal.ClearScreen+terminal.CursorHome)
	return err
}

func (s *Screen) renderRows(ab *bytes.Buffer, e tonne.Editor) {
	b := e.GetBuffer()
	size := e.GetSize()
	offset := e.GetOffset()
	for y := 0; y < size.Rows; y++ {
		fileRow := y + offset.Rows
		if fileRow >= b.GetRowCount() {
			if b.GetRowCount() == 0 && y == size.Rows/3 {
				renderWelcome(ab, size.Cols)
			} else {
				ab.WriteByte('~')
			}
		} else {
			line := b.GetRenderText(fileRow)
			if offset.Cols < len(line) {
				line = line[offset.Cols:]
			} else {
				line = nil
			}
			// truncate line to fit screen
			if len(line) > size.Cols {
				line = line[:size.Cols]
			}
			renderText(ab, line)
		}
		ab.WriteString(terminal.ClearLine)
		ab.WriteString("\r\n")
	}
}

func renderWelcome(ab *bytes.Buffer, cols int) {
	welcome := fmt.Sprintf("tonne editor -- version %s", Version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		ab.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab.WriteByte(' ')
	}
	ab.WriteString(welcome)
}

// control characters are shown inverted so they never reach the terminal
func renderText(ab *bytes.Buffer, line []byte) {
	for _, c := range line {
		if c < 0x20 || c == 0x7f {
			symbol := byte('?')
			if c < 0x20 {
				symbol = '@' + c
			}
			ab.WriteString(terminal.InverseOn)
			ab.WriteByte(symbol)
			ab.WriteString(terminal.InverseOff)
		} else {
			ab.WriteByte(c)
		}
	}
}

func (s *Screen) renderInfoBar(ab *bytes.Buffer, e tonne.Editor) {
	b := e.GetBuffer()
	cols := e.GetSize().Cols

	name := b.GetFileName()
	if name == "" {
		name = "[No Name]"
	}
	text := fmt.Sprintf("%.20s - %d lines", name, b.GetRowCount())
	finalText := fmt.Sprintf("%d/%d", e.GetCursor().Row+1, b.GetRowCount())
	if len(text) > cols {
		text = text[:cols]
	}

	ab.WriteString(terminal.InverseOn)
	ab.WriteString(text)
	for length := len(text); length < cols; length++ {
		if cols-length == len(finalText) {
			ab.WriteString(finalText)
			break
		}
		ab.WriteByte(' ')
	}
	ab.WriteString(terminal.InverseOff)
	ab.WriteString("\r\n")
}

func (s *Screen) renderMessageBar(ab *bytes.Buffer, e tonne.Editor) {
	ab.WriteString(terminal.ClearLine)
	line := e.GetMessage()
	if line == "" || s.Now().Sub(e.GetMessageTime()) >= MessageTimeout {
		return
	}
	if cols := e.GetSize().Cols; len(line) > cols {
		line = line[:cols]
	}
	ab.WriteString(line)
}
