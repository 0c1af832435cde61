package sync

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/dbdm-dev/dbdm/filesystem"
)

// BackupSuffix is appended to a destination's basename when it is moved
// aside before being replaced by a symlink.
const BackupSuffix = ".bak.dbdm"

// ResolveLinkDestination computes the concrete path the symlink must be
// created at, using the source's type to decide file vs dir semantics:
//
//   - dir source, file destination: error
//   - dir source, dir or missing destination: link at to
//   - file source, dir destination: link at to/<basename(from)>
//   - file source, file or missing destination: link at to
func ResolveLinkDestination(from, to filesystem.Path) (filesystem.Path, error) {
	fromInfo, err := from.Stat()
	if err != nil {
		return "", err
	}

	toInfo, toErr := to.Lstat()

	if fromInfo.IsDir() {
		if toErr == nil && toInfo.Mode().IsRegular() {
			return "", fmt.Errorf("destination is file for directory source: %s", to)
		}

		return to, nil
	}

	if toErr == nil && toInfo.IsDir() {
		name := from.Basename()
		if name == "." || name == string(os.PathSeparator) {
			return "", fmt.Errorf("source has no basename: %s", from)
		}

		return to.Join(name), nil
	}

	return to, nil
}

// UniqueBackupPath picks a name under dir that does not exist yet: the base
// name plus BackupSuffix, then numeric suffixes .1, .2, ... until free.
func UniqueBackupPath(dir filesystem.Path, name string) filesystem.Path {
	base := name + BackupSuffix
	path := dir.Join(base)

	for counter := 1; ; counter++ {
		// An unstattable candidate counts as free; the rename that follows
		// surfaces the real problem per item.
		exists, err := path.Exists()
		if err != nil || !exists {
			return path
		}

		path = dir.Join(fmt.Sprintf("%s.%d", base, counter))
	}
}

// RemoveExisting deletes whatever sits at path: files and symlinks are
// unlinked, directories are removed recursively. A missing path is not an
// error.
func RemoveExisting(path filesystem.Path) error {
	info, err := path.Lstat()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	if info.Mode()&fs.ModeSymlink != 0 || info.Mode().IsRegular() {
		return path.Remove()
	}

	return path.RemoveAll()
}

// ReplaceLink removes any existing entry at the resolved destination and
// creates a symlink there pointing at from.
func ReplaceLink(from, to filesystem.Path) error {
	dest, err := ResolveLinkDestination(from, to)
	if err != nil {
		return err
	}

	if err := RemoveExisting(dest); err != nil {
		return err
	}

	return dest.Symlink(from)
}

// BackupAndReplace moves the existing destination content into a uniquely
// named backup next to the source, then creates the symlink. A directory
// source keeps its backups inside itself; any other source uses its parent
// directory.
func BackupAndReplace(from, to filesystem.Path) error {
	dest, err := ResolveLinkDestination(from, to)
	if err != nil {
		return err
	}

	backupDir := from.Parent()
	if info, err := from.Stat(); err == nil && info.IsDir() {
		backupDir = from
	}

	if err := backupDir.MkdirAll(0o755); err != nil {
		return err
	}

	name := dest.Basename()
	if name == "." || name == string(os.PathSeparator) {
		name = "backup"
	}

	backupPath := UniqueBackupPath(backupDir, name)
	if err := dest.Rename(backupPath); err != nil {
		return err
	}

	return dest.Symlink(from)
}
