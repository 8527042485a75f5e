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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the number of buzz events that are hashed together. the first few bytes
// of the buffer are reserved for the previous digest value
const audioBufferLength = 1024
const audioBufferStart = sha1.Size

// Audio is an implementation of the timer.AudioMixer interface. The hash is
// chained in the same way as the Video type, over the countdown values
// reported with each buzz.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig, nil
}

// Hash implements the digest.Digest interface.
func (dig Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Buzz implements the timer.AudioMixer interface.
func (dig *Audio) Buzz(remaining uint8) error {
	dig.buffer[dig.bufferCt] = remaining

	dig.bufferCt++

	if dig.bufferCt >= audioBufferLength {
		return dig.flushAudio()
	}

	return nil
}

// EndMixing implements the timer.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return dig.flushAudio()
}

func (dig *Audio) flushAudio() error {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
	return nil
}
