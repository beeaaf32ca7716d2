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
package editor

import (
	"fmt"
	"time"

	tonne "github.com/timburks/tonne/types"
)

// The Editor manages the editing of text in a Buffer.
// The cursor is in buffer coordinates; Cursor.Row may equal the row
// count, which places it on the empty line past the end of the buffer.
type Editor struct {
	Cursor      tonne.Point // cursor position
	RenderCol   int         // cursor column after tab expansion
	Offset      tonne.Size  // display offset
	Buffer      *Buffer     // buffer being edited
	size        tonne.Size  // size of editing area
	message     string      // status message
	messageTime time.Time   // when the status message was set
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

func (e *Editor) ReadFile(path string) error {
	return e.Buffer.ReadFile(path)
}

func (e *Editor) GetCursor() tonne.Point {
	return e.Cursor
}

func (e *Editor) GetRenderCol() int {
	return e.RenderCol
}

func (e *Editor) GetOffset() tonne.Size {
	return e.Offset
}

func (e *Editor) GetSize() tonne.Size {
	return e.size
}

func (e *Editor) SetSize(s tonne.Size) {
	e.size = s
}

func (e *Editor) GetBuffer() tonne.Buffer {
	return e.Buffer
}

func (e *Editor) SetMessage(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	e.messageTime = time.Now()
}

func (e *Editor) GetMessage() string {
	return e.message
}

func (e *Editor) GetMessageTime() time.Time {
	return e.messageTime
}

func (e *Editor) currentRow() *Row {
	return e.Buffer.Row(e.Cursor.Row)
}

// Scroll recomputes the render column and moves the display offset to keep the cursor onscreen.
func (e *Editor) Scroll() {
	e.RenderCol = 0
	if row := e.currentRow(); row != nil {
		e.RenderCol = row.CxToRx(e.Cursor.Col)
	}
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row >= e.Offset.Rows+e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	if e.RenderCol < e.Offset.Cols {
		e.Offset.Cols = e.RenderCol
	}
	if e.RenderCol >= e.Offset.Cols+e.size.Cols {
		e.Offset.Cols = e.RenderCol - e.size.Cols + 1
	}
}

func (e *Editor) MoveCursor(direction int) {
	row := e.currentRow()
	switch direction {
	case tonne.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
		}
	case tonne.MoveRight:
		if row != nil {
			if e.Cursor.Col < row.Length() {
				e.Cursor.Col++
			} else if e.Cursor.Col == row.Length() && e.Cursor.Row+1 < e.Buffer.GetRowCount() {
				e.Cursor.Row++
				e.Cursor.Col = 0
			}
		}
	case tonne.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case tonne.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount() {
			e.Cursor.Row++
		}
	}
	// don't go past the end of the current line
	rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
	if e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
}

func (e *Editor) PageUp() {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	// move up by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(tonne.MoveUp)
	}
}

func (e *Editor) PageDown() {
	// move to the bottom of the screen
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	if e.Cursor.Row > e.Buffer.GetRowCount() {
		e.Cursor.Row = e.Buffer.GetRowCount()
	}
	// move down by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(tonne.MoveDown)
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
}

// InsertChar inserts c at the cursor, adding a row first if the cursor is past the last row.
func (e *Editor) InsertChar(c byte) {
	if e.Cursor.Row == e.Buffer.GetRowCount() {
		e.Buffer.AppendRow(nil)
	}
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// InsertNewline breaks the current row at the cursor.
func (e *Editor) InsertNewline() {
	if e.Cursor.Col == 0 {
		e.Buffer.InsertRow(e.Cursor.Row, nil)
	} else {
		after := e.currentRow().Split(e.Cursor.Col)
		e.Buffer.InsertRow(e.Cursor.Row+1, after.Text())
	}
	e.Cursor.Row++
	e.Cursor.Col = 0
}

// DeleteCharacter removes the character before the cursor, joining
// the row with the previous one when the cursor is at its start.
func (e *Editor) DeleteCharacter() {
	row := e.currentRow()
	if row == nil {
		return
	}
	if e.Cursor.Col == 0 && e.Cursor.Row == 0 {
		return
	}
	if e.Cursor.Col > 0 {
		row.DeleteChar(e.Cursor.Col - 1)
		e.Cursor.Col--
		return
	}
	previous := e.Buffer.Row(e.Cursor.Row - 1)
	e.Cursor.Col = previous.Length()
	previous.Join(row)
	e.Buffer.DeleteRow(e.Cursor.Row)
	e.Cursor.Row--
}
