package pool

import "sync"

// Slice pools for efficient reuse of typed slices. The payload buffer and
// decode scratch of waveform extraction are the hot callers: one get/put
// pair per data record.
var (
	byteSlicePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
	int32SlicePool = sync.Pool{
		New: func() any { return &[]int32{} },
	}
)

// GetByteSlice retrieves a byte slice of the given length from the pool,
// allocating when the pooled slice has insufficient capacity. The caller
// must call the returned cleanup function, typically with defer, to return
// the slice to the pool.
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { byteSlicePool.Put(ptr) }
}

// GetInt32Slice is the int32 companion of GetByteSlice, used for decoded
// sample scratch space.
func GetInt32Slice(size int) ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int32, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { int32SlicePool.Put(ptr) }
}
