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

// Package logger is the central log service for the emulation. Packages
// should log with the Log() and Logf() functions, tagging the entry with a
// short name for the originating package or sub-system.
//
// Identical log messages sent in succession are collapsed into a single
// entry with a repeat count, keeping tight-loop logging legible.
//
// The contents of the log can be written to an io.Writer with the Write()
// and Tail() functions. Alternatively, entries can be echoed as they arrive
// with SetEcho(); this is how the -log flag of the command line modes is
// implemented.
package logger
