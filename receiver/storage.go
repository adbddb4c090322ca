// SPDX-License-Identifier: GPL-3.0-or-later
package receiver

import "os"

type attachmentStore interface {
	MkdirAll(dir string) error
	WriteFile(path string, data []byte) error
}

type fileStore struct{}

func (fileStore) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

func (fileStore) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
