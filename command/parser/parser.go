/*
 * tinyos - Shell command parser: a table of commands matched by minimum
 * abbreviation, plus line-editing completion support.
 *
 * Copyright 2026, The tinyos Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package parser turns one shell input line into a system operation: ls,
// ps, exec (foreground or background with a trailing "&"), kill, dis, and
// exit. Commands are matched by a minimum unambiguous abbreviation, the
// same technique the teacher's command/parser package uses for its device
// commands, simplified here since tinyos's commands take at most one
// argument rather than a device-option grammar.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rcornwell/tinyos/system"
)

// cmd is one entry in the command table: a name, the minimum number of
// leading characters that uniquely select it, and the handler that acts on
// the remaining arguments.
type cmd struct {
	name    string
	min     int
	process func(args []string, sys *system.System) (quit bool, output string, err error)
}

var cmdList = []cmd{
	{name: "ls", min: 1, process: doList},
	{name: "ps", min: 1, process: doPS},
	{name: "exec", min: 1, process: doExec},
	{name: "kill", min: 1, process: doKill},
	{name: "dis", min: 2, process: doDisassemble},
	{name: "exit", min: 2, process: doExit},
}

// ErrNotFound is returned by ProcessCommand when the command word does not
// match, or ambiguously matches more than one, entry in the command table.
var ErrNotFound = errors.New("command not found")

// ProcessCommand parses and runs one shell input line, returning any text
// the command produced. It reports quit=true when the shell should
// terminate (the "exit" command). An empty line is silently ignored.
func ProcessCommand(line string, sys *system.System) (quit bool, output string, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, "", nil
	}

	name, args := fields[0], fields[1:]
	match := matchList(name)
	if len(match) != 1 {
		return false, "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return match[0].process(args, sys)
}

// CompleteCmd returns the command names that match the partial word typed
// so far, for the shell's line-editing tab completion.
func CompleteCmd(line string) []string {
	fields := strings.Fields(line)
	if len(fields) > 1 || (len(fields) == 1 && strings.HasSuffix(line, " ")) {
		return nil
	}
	prefix := ""
	if len(fields) == 1 {
		prefix = fields[0]
	}
	var out []string
	for _, c := range cmdList {
		if strings.HasPrefix(c.name, prefix) {
			out = append(out, c.name)
		}
	}
	return out
}

func matchCommand(c cmd, name string) bool {
	if len(name) < c.min || len(name) > len(c.name) {
		return false
	}
	return c.name[:len(name)] == name
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var out []cmd
	for _, c := range cmdList {
		if matchCommand(c, name) {
			out = append(out, c)
		}
	}
	return out
}

func doList(_ []string, sys *system.System) (bool, string, error) {
	out, err := sys.ListFiles()
	return false, out, err
}

func doPS(_ []string, sys *system.System) (bool, string, error) {
	return false, sys.ListProcesses(), nil
}

func doExec(args []string, sys *system.System) (bool, string, error) {
	if len(args) == 0 {
		return false, "", errors.New("exec: missing program name")
	}
	background := len(args) >= 2 && args[1] == "&"
	pid, err := sys.Exec(args[0], !background)
	if err != nil {
		return false, "", err
	}
	if background {
		return false, fmt.Sprintf("started pid %d", pid), nil
	}
	return false, "", sys.Wait(pid)
}

func doKill(args []string, sys *system.System) (bool, string, error) {
	if len(args) == 0 {
		return false, "", errors.New("kill: missing pid")
	}
	pid, err := system.ParsePID(args[0])
	if err != nil {
		return false, "", err
	}
	return false, "", sys.Kill(pid)
}

func doDisassemble(args []string, sys *system.System) (bool, string, error) {
	if len(args) == 0 {
		return false, "", errors.New("dis: missing program name")
	}
	out, err := sys.Disassemble(args[0])
	return false, out, err
}

func doExit(_ []string, _ *system.System) (bool, string, error) {
	return true, "", nil
}
