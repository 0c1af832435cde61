package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Path is a filesystem path. It may be relative or absolute, exactly as the
// user declared it in the config.
type Path string

func (p Path) Join(names ...string) Path {
	args := []string{string(p)}
	args = append(args, names...)
	return Path(filepath.Join(args...))
}

func (p Path) Parent() Path {
	return Path(filepath.Dir(string(p)))
}

func (p Path) Basename() string {
	return filepath.Base(string(p))
}

func (p Path) IsAbs() bool {
	return filepath.IsAbs(string(p))
}

func (p Path) MkdirAll(perm os.FileMode) error {
	return os.MkdirAll(string(p), perm)
}

func (p Path) RemoveAll() error {
	return os.RemoveAll(string(p))
}

func (p Path) Remove() error {
	return os.Remove(string(p))
}

func (p Path) Rename(to Path) error {
	return os.Rename(string(p), string(to))
}

func (p Path) WriteFile(data []byte, perm os.FileMode) error {
	return os.WriteFile(string(p), data, perm)
}

func (p Path) ReadFile() ([]byte, error) {
	return os.ReadFile(string(p))
}

// ReadDir returns the directory's entries in on-disk order, not sorted.
func (p Path) ReadDir() ([]os.DirEntry, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return f.ReadDir(-1)
}

// Lstat returns the path's metadata without following a symlink at the path
// itself.
func (p Path) Lstat() (fs.FileInfo, error) {
	return os.Lstat(string(p))
}

// Stat returns the path's metadata, following symlinks.
func (p Path) Stat() (fs.FileInfo, error) {
	return os.Stat(string(p))
}

func (p Path) Exists() (bool, error) {
	_, err := os.Lstat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (p Path) Readlink() (Path, error) {
	target, err := os.Readlink(string(p))
	if err != nil {
		return Path(""), err
	}

	return Path(target), nil
}

func (p Path) Symlink(target Path) error {
	return os.Symlink(string(target), string(p))
}

// ResolveLinkTarget normalizes a raw symlink target read from the link at p.
// A relative target is interpreted relative to the symlink's own parent
// directory, matching POSIX resolution semantics.
func (p Path) ResolveLinkTarget(target Path) Path {
	if target.IsAbs() {
		return target
	}

	return p.Parent().Join(string(target))
}

// Canonicalize returns the absolute, symlink-resolved form of the path, or
// the path unchanged when it cannot be resolved.
func (p Path) Canonicalize() Path {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return p
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Path(abs)
	}

	return Path(resolved)
}

// IsEmpty reports whether the path holds no content worth preserving. A file
// is empty iff it has zero bytes. A directory is empty iff every entry in its
// subtree is an empty file or an empty directory; a symlink anywhere in the
// subtree makes it non-empty regardless of what it references. The walk uses
// an explicit stack so deep trees cannot exhaust the goroutine stack.
func (p Path) IsEmpty() (bool, error) {
	info, err := p.Lstat()
	if err != nil {
		return false, err
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		return false, nil
	}

	if !info.IsDir() {
		return info.Mode().IsRegular() && info.Size() == 0, nil
	}

	stack := []Path{p}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := dir.ReadDir()
		if err != nil {
			return false, err
		}

		for _, entry := range entries {
			child := dir.Join(entry.Name())

			info, err := child.Lstat()
			if err != nil {
				return false, err
			}

			switch {
			case info.Mode()&fs.ModeSymlink != 0:
				return false, nil
			case info.IsDir():
				stack = append(stack, child)
			case !info.Mode().IsRegular() || info.Size() > 0:
				return false, nil
			}
		}
	}

	return true, nil
}

func (p Path) String() string {
	return string(p)
}
