// Copyright (c) 2025, The Schafer Family Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schafer-family/cookbook/pkg/errors"
)

const outputFileMode = 0o644

// FileWriter replaces a file atomically: content goes to a temporary file in
// the destination directory, which is then renamed over the target. Readers
// see either the old file or the complete new one.
type FileWriter struct {
	format Format
	path   string
}

// NewFileWriter creates a FileWriter for path.
func NewFileWriter(format Format, path string) *FileWriter {
	return &FileWriter{format: format, path: path}
}

// Path returns the destination path.
func (w *FileWriter) Path() string {
	return w.path
}

// Serialize encodes v and replaces the destination file.
func (w *FileWriter) Serialize(ctx context.Context, v any) error {
	content, err := Marshal(w.format, v)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeTimeout, "write canceled", err)
	}
	if err := WriteFileAtomic(w.path, content); err != nil {
		return err
	}
	slog.Debug("output file written", "path", w.path, "bytes", len(content))
	return nil
}

// WriteFileAtomic writes data to path through a temporary sibling file and a rename.
// Failures are ErrCodeWriteFailed and leave any existing file untouched.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	fail := func(msg string, err error) error {
		return errors.WrapWithContext(errors.ErrCodeWriteFailed, msg, err, map[string]any{"path": path})
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fail("failed to create output file", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fail("failed to write output file", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fail("failed to sync output file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fail("failed to close output file", err)
	}
	if err := os.Chmod(tmpPath, outputFileMode); err != nil {
		_ = os.Remove(tmpPath)
		return fail("failed to set output file mode", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fail("failed to replace output file", err)
	}
	return nil
}
