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

import "time"

// Editor modes
const (
	ModeEdit = 0
	ModeQuit = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Editor is the state that the screen draws and the commander modifies.
type Editor interface {
	GetCursor() Point
	GetRenderCol() int
	GetOffset() Size
	GetSize() Size
	GetBuffer() Buffer
	GetMessage() string
	GetMessageTime() time.Time

	SetSize(size Size)
	SetMessage(format string, args ...any)
	Scroll()

	MoveCursor(direction int)
	PageUp()
	PageDown()
	MoveToBeginningOfLine()
	MoveToEndOfLine()

	InsertChar(c byte)
	InsertNewline()
	DeleteCharacter()
}

// Buffer is the read side of the rows being edited.
type Buffer interface {
	GetRowCount() int
	GetFileName() string
	GetRenderText(row int) []byte
}
