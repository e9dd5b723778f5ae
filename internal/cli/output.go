package cli

import (
	"io"
	"os"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for an empty path, else creates the file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

// writeFile writes data to path, or to stdout when path is empty.
func writeFile(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
