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

package execution

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the execution of a single instruction. The CPU refreshes
// its LastResult field on every call to ExecuteInstruction().
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	// the instruction word as fetched. both bytes, big-endian
	Opcode uint16

	// the decoded definition. nil if the word failed to decode
	Defn *instructions.Definition

	// the operand bit fields of the word. valid whether or not the word
	// decoded
	Fields instructions.Fields

	// whether this data has been finalised. the CPU sets this after the
	// execute stage has completed without error
	Final bool
}

// IsValid checks whether the result is consistent with its instruction
// definition. Intended for debugging contexts; the CPU itself never calls
// it.
func (result Result) IsValid() error {
	if !result.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if result.Defn == nil {
		return curated.Errorf("cpu: execution finalised without a decoded instruction")
	}

	return nil
}
