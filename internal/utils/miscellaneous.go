package utils

import (
	"unsafe"
)

// GetByteSize returns the size in bytes of a value of type T.
func GetByteSize[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}
