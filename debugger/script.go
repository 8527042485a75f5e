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
	"bufio"
	"os"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// playScript runs debugger commands from a file, one per line. Lines
// beginning with # are comments. The first command that fails abandons the
// rest of the script.
//
// A script can invoke another script with the SCRIPT command. There is no
// protection against a script that includes itself.
func (dbg *Debugger) playScript(scriptfile string) error {
	f, err := os.Open(scriptfile)
	if err != nil {
		return curated.Errorf("script: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}

		dbg.printLine(terminal.StyleEcho, input)

		err = dbg.parseInput(input)
		if err != nil {
			return curated.Errorf("script: %s: %v", scriptfile, err)
		}

		if dbg.quit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("script: %v", err)
	}

	return nil
}
