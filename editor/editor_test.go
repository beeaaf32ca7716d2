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
	"strings"
	"testing"

	tonne "github.com/timburks/tonne/types"
)

func setup(t *testing.T, text string, size tonne.Size) *Editor {
	e := NewEditor()
	if err := e.Buffer.Load(strings.NewReader(text)); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	e.SetSize(size)
	return e
}

func numberedLines(n int) string {
	var s strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&s, "line %d\n", i)
	}
	return s.String()
}

// checkCursor verifies the cursor invariants that hold after every command.
func checkCursor(t *testing.T, e *Editor) {
	t.Helper()
	rows := e.Buffer.GetRowCount()
	if e.Cursor.Row < 0 || e.Cursor.Row > rows {
		t.Errorf("Cursor row %d outside [0, %d]", e.Cursor.Row, rows)
	}
	if e.Cursor.Col < 0 || e.Cursor.Col > e.Buffer.GetRowLength(e.Cursor.Row) {
		t.Errorf("Cursor col %d outside row %d of length %d", e.Cursor.Col, e.Cursor.Row, e.Buffer.GetRowLength(e.Cursor.Row))
	}
}

func TestMoveRightAcrossRows(t *testing.T) {
	e := setup(t, "hello\nworld\n", tonne.Size{Rows: 10, Cols: 80})
	for i := 0; i < 5; i++ {
		e.MoveCursor(tonne.MoveRight)
	}
	if e.Cursor != (tonne.Point{Row: 0, Col: 5}) {
		t.Errorf("Unexpected cursor after five moves: %+v", e.Cursor)
	}
	e.MoveCursor(tonne.MoveRight)
	if e.Cursor != (tonne.Point{Row: 1, Col: 0}) {
		t.Errorf("Expected to wrap to the next row, got %+v", e.Cursor)
	}
}

func TestMoveRightAtEndOfLastRow(t *testing.T) {
	e := setup(t, "hello", tonne.Size{Rows: 10, Cols: 80})
	for i := 0; i < 6; i++ {
		e.MoveCursor(tonne.MoveRight)
	}
	if e.Cursor != (tonne.Point{Row: 0, Col: 5}) {
		t.Errorf("Expected cursor to stay at the end of the row, got %+v", e.Cursor)
	}
}

func TestMoveLeftAcrossRows(t *testing.T) {
	e := setup(t, "abc\nde\n", tonne.Size{Rows: 10, Cols: 80})
	e.Cursor = tonne.Point{Row: 1, Col: 0}
	e.MoveCursor(tonne.MoveLeft)
	if e.Cursor != (tonne.Point{Row: 0, Col: 3}) {
		t.Errorf("Expected to wrap to the end of the previous row, got %+v", e.Cursor)
	}
	e.Cursor = tonne.Point{Row: 0, Col: 0}
	e.MoveCursor(tonne.MoveLeft)
	if e.Cursor != (tonne.Point{Row: 0, Col: 0}) {
		t.Errorf("Cursor moved before the start of the buffer: %+v", e.Cursor)
	}
}

func TestVerticalMovesClampColumn(t *testing.T) {
	e := setup(t, "a long line\nab\n", tonne.Size{Rows: 10, Cols: 80})
	e.Cursor = tonne.Point{Row: 0, Col: 8}
	e.MoveCursor(tonne.MoveDown)
	if e.Cursor != (tonne.Point{Row: 1, Col: 2}) {
		t.Errorf("Column not clamped moving down: %+v", e.Cursor)
	}
	// the row past the end is reachable and has no columns
	e.MoveCursor(tonne.MoveDown)
	if e.Cursor != (tonne.Point{Row: 2, Col: 0}) {
		t.Errorf("Expected the virtual row past the end, got %+v", e.Cursor)
	}
	e.MoveCursor(tonne.MoveDown)
	if e.Cursor.Row != 2 {
		t.Errorf("Cursor moved beyond the virtual row: %+v", e.Cursor)
	}
	e.MoveCursor(tonne.MoveUp)
	e.MoveCursor(tonne.MoveUp)
	e.MoveCursor(tonne.MoveUp)
	if e.Cursor != (tonne.Point{Row: 0, Col: 0}) {
		t.Errorf("Unexpected cursor after moving up: %+v", e.Cursor)
	}
}

func TestRandomMovesKeepInvariants(t *testing.T) {
	e := setup(t, "one\n\n\tthree\nfour four four\n", tonne.Size{Rows: 2, Cols: 5})
	moves := []int{tonne.MoveRight, tonne.MoveDown, tonne.MoveRight, tonne.MoveLeft, tonne.MoveUp}
	for i := 0; i < 200; i++ {
		e.MoveCursor(moves[(i*7+i/3)%len(moves)])
		checkCursor(t, e)
		e.Scroll()
		if e.Cursor.Row < e.Offset.Rows || e.Cursor.Row >= e.Offset.Rows+e.size.Rows {
			t.Fatalf("Cursor row %d not visible with offset %d", e.Cursor.Row, e.Offset.Rows)
		}
		if e.RenderCol < e.Offset.Cols || e.RenderCol >= e.Offset.Cols+e.size.Cols {
			t.Fatalf("Render column %d not visible with offset %d", e.RenderCol, e.Offset.Cols)
		}
	}
}

func TestScroll(t *testing.T) {
	e := setup(t, numberedLines(100), tonne.Size{Rows: 10, Cols: 4})
	e.Cursor = tonne.Point{Row: 25, Col: 6}
	e.Scroll()
	if e.Offset.Rows != 16 {
		t.Errorf("Expected minimal scroll down to offset 16, got %d", e.Offset.Rows)
	}
	if e.RenderCol != 6 || e.Offset.Cols != 3 {
		t.Errorf("Unexpected horizontal scroll: rx=%d offset=%d", e.RenderCol, e.Offset.Cols)
	}
	e.Cursor = tonne.Point{Row: 3, Col: 0}
	e.Scroll()
	if e.Offset.Rows != 3 || e.Offset.Cols != 0 {
		t.Errorf("Expected scroll up to the cursor, got %+v", e.Offset)
	}
}

func TestScrollUsesRenderColumn(t *testing.T) {
	e := setup(t, "\t\tx\n", tonne.Size{Rows: 5, Cols: 10})
	e.Cursor = tonne.Point{Row: 0, Col: 2}
	e.Scroll()
	if e.RenderCol != 16 {
		t.Errorf("Expected render column 16, got %d", e.RenderCol)
	}
	if e.Offset.Cols != 7 {
		t.Errorf("Expected column offset 7, got %d", e.Offset.Cols)
	}
}

func TestPageDownAndUp(t *testing.T) {
	e := setup(t, numberedLines(50), tonne.Size{Rows: 10, Cols: 80})
	e.PageDown()
	if e.Cursor.Row != 19 {
		t.Errorf("Expected row 19 after page down, got %d", e.Cursor.Row)
	}
	e.Scroll()
	if e.Offset.Rows != 10 {
		t.Errorf("Expected offset 10, got %d", e.Offset.Rows)
	}
	e.PageUp()
	if e.Cursor.Row != 0 {
		t.Errorf("Expected row 0 after page up, got %d", e.Cursor.Row)
	}
	for i := 0; i < 10; i++ {
		e.PageDown()
		e.Scroll()
		checkCursor(t, e)
	}
	if e.Cursor.Row != 50 {
		t.Errorf("Expected paging to stop at the virtual row, got %d", e.Cursor.Row)
	}
}

func TestPageDownShortBuffer(t *testing.T) {
	e := setup(t, "a\nb\n", tonne.Size{Rows: 10, Cols: 80})
	e.PageDown()
	if e.Cursor.Row != 2 {
		t.Errorf("Expected the virtual row, got %d", e.Cursor.Row)
	}
	checkCursor(t, e)
}

func TestHomeAndEnd(t *testing.T) {
	e := setup(t, "hello\n", tonne.Size{Rows: 10, Cols: 80})
	e.MoveToEndOfLine()
	if e.Cursor.Col != 5 {
		t.Errorf("Expected column 5, got %d", e.Cursor.Col)
	}
	e.MoveToBeginningOfLine()
	if e.Cursor.Col != 0 {
		t.Errorf("Expected column 0, got %d", e.Cursor.Col)
	}
	e.Cursor.Row = 1
	e.MoveToEndOfLine()
	if e.Cursor.Col != 0 {
		t.Errorf("Expected column 0 on the virtual row, got %d", e.Cursor.Col)
	}
}

func TestInsertPastEnd(t *testing.T) {
	e := setup(t, "hello\n", tonne.Size{Rows: 10, Cols: 80})
	e.Cursor = tonne.Point{Row: 1, Col: 0}
	e.InsertChar('x')
	if e.Buffer.GetRowCount() != 2 {
		t.Errorf("Expected 2 rows, got %d", e.Buffer.GetRowCount())
	}
	if text := string(e.Buffer.Row(1).Text()); text != "x" {
		t.Errorf("Unexpected new row: '%s'", text)
	}
	if e.Cursor != (tonne.Point{Row: 1, Col: 1}) {
		t.Errorf("Unexpected cursor: %+v", e.Cursor)
	}
}

func TestInsertIntoEmptyBuffer(t *testing.T) {
	e := NewEditor()
	for _, c := range []byte("hi") {
		e.InsertChar(c)
	}
	if e.Buffer.GetRowCount() != 1 || string(e.Buffer.Row(0).Text()) != "hi" {
		t.Errorf("Unexpected buffer after typing")
	}
}

func TestInsertNewline(t *testing.T) {
	e := setup(t, "hello world\n", tonne.Size{Rows: 10, Cols: 80})
	e.Cursor = tonne.Point{Row: 0, Col: 5}
	e.InsertNewline()
	if e.Buffer.GetRowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", e.Buffer.GetRowCount())
	}
	if a, b := string(e.Buffer.Row(0).Text()), string(e.Buffer.Row(1).Text()); a != "hello" || b != " world" {
		t.Errorf("Unexpected split: '%s' '%s'", a, b)
	}
	if e.Cursor != (tonne.Point{Row: 1, Col: 0}) {
		t.Errorf("Unexpected cursor: %+v", e.Cursor)
	}
	e.InsertNewline()
	if e.Buffer.GetRowCount() != 3 || e.Buffer.GetRowLength(1) != 0 {
		t.Errorf("Expected an empty row above the cursor")
	}
	checkCursor(t, e)
}

func TestDeleteCharacter(t *testing.T) {
	e := setup(t, "ab\ncd\n", tonne.Size{Rows: 10, Cols: 80})
	e.Cursor = tonne.Point{Row: 1, Col: 1}
	e.DeleteCharacter()
	if text := string(e.Buffer.Row(1).Text()); text != "d" {
		t.Errorf("Unexpected row after deletion: '%s'", text)
	}
	e.DeleteCharacter()
	if e.Buffer.GetRowCount() != 1 || string(e.Buffer.Row(0).Text()) != "abd" {
		t.Errorf("Expected rows to be joined")
	}
	if e.Cursor != (tonne.Point{Row: 0, Col: 2}) {
		t.Errorf("Unexpected cursor after join: %+v", e.Cursor)
	}
	e.Cursor = tonne.Point{Row: 0, Col: 0}
	e.DeleteCharacter()
	e.Cursor = tonne.Point{Row: 1, Col: 0}
	e.DeleteCharacter()
	if string(e.Buffer.Row(0).Text()) != "abd" {
		t.Errorf("Deletion at the buffer edges changed the text")
	}
}

func TestMessage(t *testing.T) {
	e := NewEditor()
	e.SetMessage("%d lines", 3)
	if e.GetMessage() != "3 lines" || e.GetMessageTime().IsZero() {
		t.Errorf("Unexpected message: '%s'", e.GetMessage())
	}
}
