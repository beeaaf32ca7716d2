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
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/tonne/commander"
	"github.com/timburks/tonne/editor"
	"github.com/timburks/tonne/screen"
	"github.com/timburks/tonne/terminal"
	tonne "github.com/timburks/tonne/types"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (status int) {
	var filename string
	if len(args) > 0 {
		filename = args[0]
	}

	logFile := openLog()
	if logFile != nil {
		defer logFile.Close()
	}

	session := terminal.NewSession(os.Stdin, os.Stdout)
	s := screen.NewScreen(session)

	// fail restores the terminal and reports a fatal error.
	fail := func(context string, err error) int {
		session.Disable()
		s.Clear()
		log.Printf("%s: %+v", context, err)
		fmt.Fprintf(os.Stderr, "tonne: %s: %v\n", context, err)
		return 1
	}

	// restore the terminal however we exit
	defer session.Disable()
	defer func() {
		if r := recover(); r != nil {
			status = fail("panic", fmt.Errorf("%v", r))
		}
	}()

	if err := session.Enable(); err != nil {
		return fail("enable raw mode", err)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	size, err := session.WindowSize()
	if err != nil {
		return fail("get window size", err)
	}
	log.Printf("window size %+v", size)
	e.SetSize(tonne.Size{Rows: size.Rows - 2, Cols: size.Cols})

	if filename != "" {
		if err := e.ReadFile(filename); err != nil {
			return fail("read file", err)
		}
		log.Printf("read %s (%d rows)", filename, e.Buffer.GetRowCount())
	}
	e.SetMessage("HELP: Ctrl-Q = quit")

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, s)
	keys := terminal.NewDecoder(session)

	// Run the main event loop.
	for c.IsRunning() {
		if err := s.Render(e); err != nil {
			return fail("render", err)
		}
		event, err := keys.ReadKey()
		if err != nil {
			return fail("read key", err)
		}
		if err := c.ProcessEvent(event); err != nil {
			return fail("process key", err)
		}
	}
	return 0
}

// openLog sends log output to ~/.tonnelog so it never lands on the screen.
func openLog() *os.File {
	log.SetOutput(io.Discard)
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(home, ".tonnelog"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil
	}
	log.SetOutput(f)
	return f
}
