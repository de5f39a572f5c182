//go:build unix

package main

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points the stdout and stderr descriptors at path, so output
// from the runtime itself lands in the file too. out is returned unchanged.
func redirectStdIO(path string, out io.Writer) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	f, err := openStdioLog(path)
	if err != nil || f == nil {
		return out, noop, err
	}
	defer f.Close()

	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return out, noop, err
		}
	}
	return out, noop, nil
}
