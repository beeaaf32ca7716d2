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
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	tonne "github.com/timburks/tonne/types"
)

var ErrCursorReply = errors.New("malformed cursor position reply")

// A Session puts a terminal into raw mode and restores it afterwards.
type Session struct {
	in       *os.File
	out      *os.File
	original *unix.Termios // attributes captured by Enable
}

func NewSession(in, out *os.File) *Session {
	return &Session{in: in, out: out}
}

// Enable switches the input terminal to raw mode. Reads then return as
// soon as a byte is available, or after 100ms with no data.
func (s *Session) Enable() error {
	fd := int(s.in.Fd())
	original, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}
	// remember the original state first so Disable can always undo a partial change
	s.original = original
	raw := rawAttributes(*original)
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// Disable restores the attributes captured by Enable. It does nothing
// if Enable never captured them.
func (s *Session) Disable() error {
	if s.original == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(int(s.in.Fd()), ioctlSetTermios, s.original); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

func rawAttributes(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1 // deciseconds
	return t
}

// Read reads available input. When the read timeout expires with no
// data it returns 0 and a nil error.
func (s *Session) Read(p []byte) (int, error) {
	n, err := unix.Read(int(s.in.Fd()), p)
	if err == unix.EAGAIN || err == unix.EINTR {
		return 0, nil
	}
	if n < 0 {
		n = 0
	}
	return n, err
}

func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// WindowSize returns the terminal size. If the size can't be queried
// directly, it is read back from the position of a cursor pushed to the
// bottom-right corner.
func (s *Session) WindowSize() (tonne.Size, error) {
	cols, rows, err := term.GetSize(int(s.out.Fd()))
	if err == nil && cols > 0 {
		return tonne.Size{Rows: rows, Cols: cols}, nil
	}
	if _, err := s.Write([]byte(CursorToBottomRight)); err != nil {
		return tonne.Size{}, fmt.Errorf("window size: %w", err)
	}
	return s.cursorPosition()
}

func (s *Session) cursorPosition() (tonne.Size, error) {
	if _, err := s.Write([]byte(QueryCursorPosition)); err != nil {
		return tonne.Size{}, fmt.Errorf("cursor position: %w", err)
	}
	reply := make([]byte, 0, maxCursorReplyLength)
	var c [1]byte
	for len(reply) < maxCursorReplyLength {
		n, err := s.Read(c[:])
		if err != nil {
			return tonne.Size{}, fmt.Errorf("cursor position: %w", err)
		}
		if n == 0 || c[0] == 'R' {
			break
		}
		reply = append(reply, c[0])
	}
	return ParseCursorPosition(reply)
}

// ParseCursorPosition parses a reply of the form ESC [ rows ; cols R.
// The trailing R is optional.
func ParseCursorPosition(reply []byte) (tonne.Size, error) {
	reply = bytes.TrimSuffix(reply, []byte("R"))
	if len(reply) < 2 || reply[0] != tonne.KeyEsc || reply[1] != '[' {
		return tonne.Size{}, ErrCursorReply
	}
	rowText, colText, found := bytes.Cut(reply[2:], []byte(";"))
	if !found {
		return tonne.Size{}, ErrCursorReply
	}
	rows, err := strconv.Atoi(string(rowText))
	if err != nil {
		return tonne.Size{}, fmt.Errorf("%w: %w", ErrCursorReply, err)
	}
	cols, err := strconv.Atoi(string(colText))
	if err != nil {
		return tonne.Size{}, fmt.Errorf("%w: %w", ErrCursorReply, err)
	}
	return tonne.Size{Rows: rows, Cols: cols}, nil
}
