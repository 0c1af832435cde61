package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadLines(t *testing.T) {
	path := writeConfig(t, "dbdm.conf", "link = /dotfiles/.vimrc /home/user/.vimrc\nsudolink = /dotfiles/hosts /etc/hosts\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, []Link{
		{From: "/dotfiles/.vimrc", To: "/home/user/.vimrc"},
		{From: "/dotfiles/hosts", To: "/etc/hosts", Sudo: true},
	}, cfg.Links)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeConfig(t, "dbdm.conf", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, cfg.Links)
}

func TestLoadLineErrors(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{"missing equals", "link /a /b\n", "invalid syntax on line 0"},
		{"bad kind", "symlink = /a /b\n", `config only supports 'link' and 'sudolink'. Invalid kind "symlink" on line 0`},
		{"no args", "link =\n", "invalid number of values on line 0. The supported syntax is '<kind> = <from> <to>'. Found 0 args"},
		{"one arg", "link = /a\n", "invalid number of values on line 0. The supported syntax is '<kind> = <from> <to>'. Found 1 args"},
		{"three args", "link = /a /b /c\n", "invalid number of values on line 0. The supported syntax is '<kind> = <from> <to>'. Found 3 args"},
		{"error carries line index", "link = /a /b\nlink /c /d\n", "invalid syntax on line 1"},
		{"bad keyword", "link = !root/a /b\n", "invalid keyword in !root/a on line 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, "dbdm.conf", tc.contents)

			_, err := Load(path)
			require.EqualError(t, err, tc.want)
		})
	}
}

func TestLoadExpandsKeywords(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()

	here, err := os.Getwd()
	require.NoError(t, err)

	path := writeConfig(t, "dbdm.conf", "link = !here/vimrc !home/.vimrc\nlink = !here/nvim !xdg_conf/nvim\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, []Link{
		{From: filepath.Join(here, "vimrc"), To: filepath.Join(home, ".vimrc")},
		{From: filepath.Join(here, "nvim"), To: filepath.Join(home, ".config", "nvim")},
	}, cfg.Links)
}

func TestLoadTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, "dbdm.toml", `
[[links]]
from = "/dotfiles/.vimrc"
to = "!home/.vimrc"

[[links]]
from = "/dotfiles/hosts"
to = "/etc/hosts"
sudo = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, []Link{
		{From: "/dotfiles/.vimrc", To: filepath.Join(home, ".vimrc")},
		{From: "/dotfiles/hosts", To: "/etc/hosts", Sudo: true},
	}, cfg.Links)
}
