package handler

import (
	"bytes"
	"sync"
)

const (
	// responseBufferSize fits a typical wager result without growing
	responseBufferSize = 1024

	// maxPooledBufferSize keeps one oversized response from pinning memory in the pool
	maxPooledBufferSize = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew past maxPooledBufferSize
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
