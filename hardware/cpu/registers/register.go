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

package registers

import "fmt"

// Register is one of the sixteen 8-bit general registers, V0 to VF. The
// arithmetic functions return the bit that the flag register receives; it
// is the CPU's job to store it there, never the register's.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Label returns the name the register was given on creation.
func (r Register) Label() string {
	return r.label
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register, wrapping on overflow. Returns the carry state:
// true when the true sum did not fit in eight bits.
func (r *Register) Add(val uint8) bool {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract value from register, wrapping on underflow. Returns true when
// NO borrow occurred, ie. when the register held at least the subtracted
// value. That is the value the flag register receives.
func (r *Register) Subtract(val uint8) bool {
	v := r.value
	r.value -= val
	return v >= val
}

// SubtractFrom loads the register with value minus register, wrapping on
// underflow. The no-borrow rule is the same as for Subtract but with the
// operands the other way around.
func (r *Register) SubtractFrom(val uint8) bool {
	v := r.value
	r.value = val - r.value
	return val >= v
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// SHR shifts the register one bit to the right. Returns the least
// significant bit as it was before the shift.
func (r *Register) SHR() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// SHL shifts the register one bit to the left. Returns the most significant
// bit as it was before the shift.
func (r *Register) SHL() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}
