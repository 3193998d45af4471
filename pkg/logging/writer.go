package logging

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to every writer, continuing past failures.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: writers}
}

// Write returns the bytes written by the first writer that succeeded and
// every writer's error combined.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	written := false
	for _, w := range cw.Writers {
		wn, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if !written {
			n, written = wn, true
		}
	}
	return n, err
}
