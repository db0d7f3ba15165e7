package output

import (
	"io"
	"os"
	"path/filepath"

	"github.com/agentstation/voicemap/pkg/constants"
	"github.com/agentstation/voicemap/pkg/errors"
)

// Flush writes data to path, creating missing parent directories, or to
// stdout when path is empty. Commands buffer their whole output and call
// Flush once, so a failed run never leaves a partial file.
func Flush(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return errors.WrapIO("write", "stdout", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	return errors.WrapIO("write", path, os.WriteFile(path, data, constants.FilePermissions))
}

// Dest names where Flush writes for logs.
func Dest(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
