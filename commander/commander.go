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
package commander

import (
	tonne "github.com/timburks/tonne/types"
)

// QuitKey ends the editing session.
var QuitKey = tonne.CtrlKey('q')

// A Clearer erases the screen before the editor exits.
type Clearer interface {
	Clear() error
}

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor tonne.Editor
	screen Clearer
	mode   int // editor mode
}

func NewCommander(e tonne.Editor, s Clearer) *Commander {
	return &Commander{editor: e, screen: s, mode: tonne.ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != tonne.ModeQuit
}

func (c *Commander) ProcessEvent(event tonne.Event) error {
	e := c.editor
	switch event.Key {
	case tonne.KeyEscape:
		break
	case tonne.KeyArrowUp:
		e.MoveCursor(tonne.MoveUp)
	case tonne.KeyArrowDown:
		e.MoveCursor(tonne.MoveDown)
	case tonne.KeyArrowLeft:
		e.MoveCursor(tonne.MoveLeft)
	case tonne.KeyArrowRight:
		e.MoveCursor(tonne.MoveRight)
	case tonne.KeyPgup:
		e.PageUp()
	case tonne.KeyPgdn:
		e.PageDown()
	case tonne.KeyHome:
		e.MoveToBeginningOfLine()
	case tonne.KeyEnd:
		e.MoveToEndOfLine()
	case tonne.KeyDelete:
		// delete the character under the cursor
		cursor := e.GetCursor()
		e.MoveCursor(tonne.MoveRight)
		if e.GetCursor() != cursor {
			e.DeleteCharacter()
		}
	case tonne.KeyRune:
		return c.processCharacter(event.Ch)
	}
	return nil
}

func (c *Commander) processCharacter(ch byte) error {
	e := c.editor
	switch ch {
	case QuitKey:
		c.mode = tonne.ModeQuit
		return c.screen.Clear()
	case tonne.KeyEnter:
		e.InsertNewline()
	case tonne.KeyBackspace, tonne.CtrlKey('h'):
		e.DeleteCharacter()
	case tonne.CtrlKey('l'), tonne.KeyEsc:
		break
	default:
		e.InsertChar(ch)
	}
	return nil
}
