package testutil

import "io"

var _ io.Writer = (*IOWriterMock)(nil)

type IOWriterMock struct {
	WriteFunc func(p []byte) (n int, err error)
}

func (m *IOWriterMock) Write(p []byte) (n int, err error) {
	return m.WriteFunc(p)
}
