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

import "fmt"

// VT100 control sequences used by the editor.
const (
	ClearScreen          = "\x1b[2J"
	CursorHome           = "\x1b[H"
	ClearLine            = "\x1b[K"
	HideCursor           = "\x1b[?25l"
	ShowCursor           = "\x1b[?25h"
	InverseOn            = "\x1b[7m"
	InverseOff           = "\x1b[m"
	QueryCursorPosition  = "\x1b[6n"
	CursorToBottomRight  = "\x1b[999C\x1b[999B"
	maxCursorReplyLength = 32
)

// MoveCursor returns the sequence that moves the cursor to a 1-based row and column.
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}
