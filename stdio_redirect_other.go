//go:build !unix

package main

import "io"

// redirectStdIO has no descriptor to rebind here, so progress output is
// written to the log file through the returned writer instead.
func redirectStdIO(path string, out io.Writer) (io.Writer, func() error, error) {
	f, err := openStdioLog(path)
	if err != nil || f == nil {
		return out, func() error { return nil }, err
	}
	return f, f.Close, nil
}
