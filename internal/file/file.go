package file

import (
	"fmt"
	"io"
	"os"
)

const defaultPerm os.FileMode = 0o644

// Appender is an io.Writer that opens the file, appends p and closes it
// again on every Write. No descriptor is held between writes.
type Appender struct {
	path string
	perm os.FileMode
}

var _ io.Writer = (*Appender)(nil)

func NewAppender(path string) *Appender {
	return &Appender{path: path, perm: defaultPerm}
}

func (a *Appender) Path() string {
	return a.path
}

func (a *Appender) Write(p []byte) (int, error) {
	file, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, a.perm)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	n, err := file.Write(p)
	if err != nil {
		return n, fmt.Errorf("failed to write to file: %w", err)
	}
	return n, nil
}
