// Package security provides validation and memory hygiene helpers
package security

import (
	"crypto/subtle"
	"runtime"
)

// SecureZero zeros out a byte slice holding secret material such as
// serialized shared-secret coordinates
func SecureZero(data []byte) {
	if len(data) == 0 {
		return
	}

	zeros := make([]byte, len(data))
	subtle.ConstantTimeCopy(1, data, zeros)

	runtime.KeepAlive(data)
}
