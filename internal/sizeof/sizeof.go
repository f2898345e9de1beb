// Package sizeof holds in-memory sizes of register types.
package sizeof

import "unsafe"

const UInt8 = int(unsafe.Sizeof(uint8(0)))
