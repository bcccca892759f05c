package stdio

import "sync"

// maxPooled caps the capacity of buffers returned to the pool so one huge
// line does not pin memory.
const maxPooled = 64 << 10

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

func getBuf() *[]byte { return bufPool.Get().(*[]byte) }

func putBuf(b *[]byte) {
	if cap(*b) > maxPooled {
		return
	}
	*b = (*b)[:0]
	bufPool.Put(b)
}
