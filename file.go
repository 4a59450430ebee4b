package tsvnorm

import (
	"io"
	"os"
	"path/filepath"
)

// WriteFile transforms the text read from r and commits the result to
// path atomically: output goes to a temporary file in the destination
// directory and is renamed into place only after the whole run
// succeeds. On any failure the temporary file is removed, so a failed
// run never leaves a new artifact at path.
func WriteFile(path string, m Mode, r io.Reader) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tsvnorm-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, m, r); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
