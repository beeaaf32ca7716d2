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

// TabStop is the column interval that tabs expand to.
const TabStop = 8

// A row of text in the editor.
// Render holds Chars with tabs expanded and is rebuilt after every change.
type Row struct {
	chars  []byte
	render []byte
}

func NewRow(text []byte) *Row {
	r := &Row{}
	r.chars = append(make([]byte, 0, len(text)), text...)
	r.updateRender()
	return r
}

func (r *Row) updateRender() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(r.chars)+tabs*(TabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
}

// Length is the number of raw characters in the row.
func (r *Row) Length() int {
	return len(r.chars)
}

// RenderLength is the number of columns the row occupies on screen.
func (r *Row) RenderLength() int {
	return len(r.render)
}

func (r *Row) Text() []byte {
	return r.chars
}

func (r *Row) DisplayText() []byte {
	return r.render
}

// CxToRx converts a raw column into a render column.
func (r *Row) CxToRx(cx int) int {
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rx := 0
	for _, c := range r.chars[:cx] {
		if c == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

func (r *Row) InsertChar(col int, c byte) {
	if col < 0 {
		col = 0
	}
	if col > len(r.chars) {
		col = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[col+1:], r.chars[col:])
	r.chars[col] = c
	r.updateRender()
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) byte {
	if col < 0 || col >= len(r.chars) {
		return 0
	}
	c := r.chars[col]
	r.chars = append(r.chars[:col], r.chars[col+1:]...)
	r.updateRender()
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < 0 {
		col = 0
	}
	if col >= len(r.chars) {
		return NewRow(nil)
	}
	after := NewRow(r.chars[col:])
	r.chars = r.chars[:col]
	r.updateRender()
	return after
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.chars = append(r.chars, other.chars...)
	r.updateRender()
}
