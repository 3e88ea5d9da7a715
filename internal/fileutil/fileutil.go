// Package fileutil holds the file modes used when writing reports.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for report files, which can
// describe the shape of private API payloads (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// OwnerDir is the permission mode for directories created to hold reports.
const OwnerDir os.FileMode = 0o750

// EnsureDir creates dir and any missing parents with OwnerDir permissions.
// An empty dir means the current directory and is a no-op.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, OwnerDir)
}
