// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"sort"
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface against
// the debugger command set. Repeated invocations on the same guess cycle
// through the matching commands.
type tabCompletion struct {
	commands []string

	guess   string
	matches []string
	idx     int
}

func newTabCompletion() *tabCompletion {
	tc := &tabCompletion{
		commands: make([]string, 0, len(help)),
	}
	for c := range help {
		tc.commands = append(tc.commands, c)
	}
	sort.Strings(tc.commands)
	return tc
}

// Complete implements the terminal.TabCompletion interface. Only the
// command word, the first on the line, is completed.
func (tc *tabCompletion) Complete(input string) string {
	if strings.ContainsAny(strings.TrimSpace(input), " ") {
		return input
	}

	guess := strings.ToUpper(strings.TrimSpace(input))

	if guess != tc.guess || len(tc.matches) == 0 {
		tc.guess = guess
		tc.matches = tc.matches[:0]
		tc.idx = 0
		for _, c := range tc.commands {
			if strings.HasPrefix(c, guess) {
				tc.matches = append(tc.matches, c)
			}
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	s := tc.matches[tc.idx] + " "
	tc.idx = (tc.idx + 1) % len(tc.matches)

	// subsequent completions of the completed string should cycle through
	// the same match list
	tc.guess = strings.TrimSpace(s)

	return s
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.guess = ""
	tc.matches = tc.matches[:0]
	tc.idx = 0
}
