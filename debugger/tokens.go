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
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors returned by the token parsing functions.
const (
	NotANumber      = "not a number (%s)"
	NotAnAddress    = "not an address (%s)"
	NotAKey         = "not a key (%s)"
	TrailingTokens  = "unexpected argument (%s)"
	MissingArgument = "missing argument (%s required)"
)

// tokens is a tokenised line of user input. Tokens are consumed in order
// with the get functions; the validation functions turn them into typed
// values with a helpful error on failure.
type tokens struct {
	tokens []string
	curr   int
}

func tokeniseInput(input string) *tokens {
	return &tokens{
		tokens: strings.Fields(input),
	}
}

// number of tokens remaining, including any that have been peeked at.
func (tk *tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

// get the next token. The second return value is false if the line is
// exhausted.
func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// peek at the next token without consuming it.
func (tk *tokens) peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// end returns an error if any tokens remain unconsumed. Commands call it
// last so that typos after valid arguments don't go unnoticed.
func (tk *tokens) end() error {
	if s, ok := tk.get(); ok {
		return curated.Errorf(TrailingTokens, s)
	}
	return nil
}

// numbers are accepted in conventional assembly notation ($nnn), Go
// notation (0xnnn) or decimal.
func parseNumber(s string) (int, error) {
	t := strings.ToLower(s)
	base := 10

	if strings.HasPrefix(t, "$") {
		t = t[1:]
		base = 16
	} else if strings.HasPrefix(t, "0x") {
		t = t[2:]
		base = 16
	}

	n, err := strconv.ParseInt(t, base, 32)
	if err != nil {
		return 0, curated.Errorf(NotANumber, s)
	}

	return int(n), nil
}

// getAddress consumes the next token as a memory address.
func (tk *tokens) getAddress() (uint16, error) {
	s, ok := tk.get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, "address")
	}

	n, err := parseNumber(s)
	if err != nil || n < 0 || n > 0xffff {
		return 0, curated.Errorf(NotAnAddress, s)
	}

	return uint16(n), nil
}

// getByte consumes the next token as a byte value.
func (tk *tokens) getByte() (uint8, error) {
	s, ok := tk.get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, "value")
	}

	n, err := parseNumber(s)
	if err != nil || n < 0 || n > 0xff {
		return 0, curated.Errorf(NotANumber, s)
	}

	return uint8(n), nil
}

// getKey consumes the next token as a keypad key, 0 to F.
func (tk *tokens) getKey() (uint8, error) {
	s, ok := tk.get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, "key")
	}

	n, err := strconv.ParseInt(strings.TrimPrefix(strings.ToLower(s), "$"), 16, 32)
	if err != nil || n < 0 || n > 0xf {
		return 0, curated.Errorf(NotAKey, s)
	}

	return uint8(n), nil
}
