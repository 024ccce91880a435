package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers for hashing payload data without allocating per payload.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 64))
	},
}
