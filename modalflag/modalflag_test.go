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

package modalflag_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	require.NoError(t, err)
	require.Equal(t, modalflag.ParseContinue, p)
	require.Empty(t, md.Mode())
	require.Empty(t, md.Path())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	require.False(t, *testFlag, "flag value should be unchanged before Parse()")

	p, err := md.Parse()
	require.NoError(t, err)
	require.Equal(t, modalflag.ParseContinue, p)
	require.Empty(t, md.Mode())
	require.Empty(t, md.Path())

	require.True(t, *testFlag)
	require.Len(t, md.RemainingArgs(), 2)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"play", "roms/pong.ch8"})
	md.AddSubModes("RUN", "PLAY", "DEBUG")

	p, err := md.Parse()
	require.NoError(t, err)
	require.Equal(t, modalflag.ParseContinue, p)
	require.Equal(t, "PLAY", md.Mode())

	// the mode selector has been consumed. the remaining argument is
	// visible after the next Parse()
	md.NewMode()
	p, err = md.Parse()
	require.NoError(t, err)
	require.Equal(t, modalflag.ParseContinue, p)
	require.Equal(t, "roms/pong.ch8", md.GetArg(0))
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"roms/pong.ch8"})
	md.AddSubModes("RUN", "PLAY")

	p, err := md.Parse()
	require.NoError(t, err)
	require.Equal(t, modalflag.ParseContinue, p)

	// first listed sub-mode is the default when the argument matches no mode
	require.Equal(t, "RUN", md.Mode())
	require.Equal(t, "roms/pong.ch8", md.GetArg(0))
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	require.Equal(t, modalflag.ParseHelp, p)
	require.True(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	require.Equal(t, modalflag.ParseHelp, p)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"

	require.True(t, tw.Compare(expectedHelp))
}

func TestHelpModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	require.Equal(t, modalflag.ParseHelp, p)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	require.True(t, tw.Compare(expectedHelp))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	require.Equal(t, modalflag.ParseHelp, p)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	require.True(t, tw.Compare(expectedHelp))
}
