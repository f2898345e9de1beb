package hll

import "unsafe"

const sizeofSketchStruct = int(unsafe.Sizeof(Sketch[struct{}]{}))
