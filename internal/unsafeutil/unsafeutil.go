package unsafeutil

import "unsafe"

// Bytes returns a read-only byte view of s without copying.
// The result must not be modified.
func Bytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
