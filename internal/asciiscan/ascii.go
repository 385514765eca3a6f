// Package asciiscan provides a fast check for whether a line is pure
// ASCII, letting callers skip UTF-8 decoding overhead on the (overwhelmingly
// common) case of plain-ASCII log and source lines.
package asciiscan

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// HasAVX2 reports whether the running CPU supports AVX2. litegrep doesn't
// carry an AVX2 code path of its own — matched lines are short enough that
// the SWAR loop below saturates memory bandwidth well before an 8-byte
// scalar chunk would — but the capability is surfaced here, the same way
// the reference engine's simd package does, so diagnostics can report what
// the process could have used.
var HasAVX2 = cpu.X86.HasAVX2

// IsASCII reports whether every byte of data is plain ASCII (high bit
// clear). It uses SWAR (SIMD-within-a-register): eight bytes are checked
// per uint64 comparison rather than one at a time.
func IsASCII(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}

	const highBits = uint64(0x8080808080808080)

	i := 0
	for i+8 <= n {
		if binary.LittleEndian.Uint64(data[i:])&highBits != 0 {
			return false
		}
		i += 8
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}
