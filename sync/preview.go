package sync

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/dbdm-dev/dbdm/filesystem"
)

// maxPreviewSize is the largest file whose content is shown verbatim when a
// conflict is previewed. Bigger files are summarized by size.
const maxPreviewSize = 32 * 1024

// Preview describes the current content at a destination so the user can
// decide what to do with it. Symlinks show their target, small text files
// their content, and directories a depth-first listing of their entries.
func Preview(path filesystem.Path) string {
	var b strings.Builder

	stack := []filesystem.Path{path}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := current.Lstat()
		if err != nil {
			fmt.Fprintf(&b, "%s: unreadable (%s)\n", current, err)
			continue
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			target, err := current.Readlink()
			if err != nil {
				fmt.Fprintf(&b, "%s: unreadable symlink (%s)\n", current, err)
				continue
			}

			fmt.Fprintf(&b, "%s: symlink -> %s\n", current, target)
		case info.IsDir():
			fmt.Fprintf(&b, "%s/:\n", current)

			entries, err := current.ReadDir()
			if err != nil {
				fmt.Fprintf(&b, "%s: unreadable directory (%s)\n", current, err)
				continue
			}

			// Push in reverse so entries pop in directory order and the
			// traversal stays depth-first.
			for i := len(entries) - 1; i >= 0; i-- {
				stack = append(stack, current.Join(entries[i].Name()))
			}
		default:
			previewFile(&b, current, info)
		}
	}

	return b.String()
}

func previewFile(b *strings.Builder, path filesystem.Path, info fs.FileInfo) {
	if info.Size() > maxPreviewSize {
		fmt.Fprintf(b, "%s: file (%d bytes)\n", path, info.Size())
		return
	}

	content, err := path.ReadFile()
	if err != nil {
		fmt.Fprintf(b, "%s: unreadable (%s)\n", path, err)
		return
	}

	if !utf8.Valid(content) || bytes.IndexByte(content, 0) >= 0 {
		fmt.Fprintf(b, "%s: binary file (%d bytes)\n", path, len(content))
		return
	}

	fmt.Fprintf(b, "%s:\n%s", path, content)
	if len(content) > 0 && content[len(content)-1] != '\n' {
		b.WriteByte('\n')
	}
}
