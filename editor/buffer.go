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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// A Buffer holds the rows of the file being edited.
type Buffer struct {
	rows     []*Row
	fileName string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	if err := b.Load(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	b.SetFileName(path)
	return nil
}

// Load appends one row per line of r, with trailing newlines and carriage returns removed.
func (b *Buffer) Load(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			b.AppendRow(bytes.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (b *Buffer) AppendRow(text []byte) {
	b.rows = append(b.rows, NewRow(text))
}

// InsertRow adds a row before position at; at == GetRowCount() appends.
func (b *Buffer) InsertRow(at int, text []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = NewRow(text)
}

func (b *Buffer) DeleteRow(row int) {
	if row >= 0 && row < len(b.rows) {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// Row returns the row at index i, or nil if there is none.
func (b *Buffer) Row(i int) *Row {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i]
	}
	return nil
}

func (b *Buffer) GetRowLength(i int) int {
	if r := b.Row(i); r != nil {
		return r.Length()
	}
	return 0
}

func (b *Buffer) GetRenderText(i int) []byte {
	if r := b.Row(i); r != nil {
		return r.DisplayText()
	}
	return nil
}

func (b *Buffer) InsertCharacter(row, col int, c byte) {
	if r := b.Row(row); r != nil {
		r.InsertChar(col, c)
	}
}
