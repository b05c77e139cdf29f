// Package memzero wipes sensitive buffers such as derived cache keys.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// ZeroKey wipes a fixed-size 32-byte key in place.
func ZeroKey(k *[32]byte) {
	if k == nil {
		return
	}
	Zero(k[:])
}
