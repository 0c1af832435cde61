// Package config loads the declared link mapping from dbdm.conf (one
// 'link = <from> <to>' per line) or from the TOML variant dbdm.toml.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

var paramsPattern = regexp.MustCompile(`^(?P<from>/?\S+/?)[ \t]+(?P<to>/?\S+/?)[ \t]*$`)

// Link is one declared mapping: To should become a symlink pointing at From.
// Sudo is accepted for compatibility with 'sudolink' lines but sync treats
// both kinds identically.
type Link struct {
	From string `toml:"from"`
	To   string `toml:"to"`
	Sudo bool   `toml:"sudo,omitempty"`
}

type Config struct {
	Links []Link `toml:"links"`
}

// Load reads and parses the config file at path. Files with a .toml
// extension use the TOML format; everything else uses the classic line
// format. Keyword expansion applies to both.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(path, ".toml") {
		return loadTOML(content)
	}

	return loadLines(string(content))
}

func loadTOML(content []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, err
	}

	for i := range cfg.Links {
		link := &cfg.Links[i]

		from, err := expandKeywords(link.From)
		if err != nil {
			return nil, fmt.Errorf("%s in link %d", err, i)
		}

		to, err := expandKeywords(link.To)
		if err != nil {
			return nil, fmt.Errorf("%s in link %d", err, i)
		}

		link.From = from
		link.To = to
	}

	return &cfg, nil
}

func loadLines(content string) (*Config, error) {
	cfg := Config{}

	content = strings.TrimRight(content, "\n")
	if content == "" {
		return &cfg, nil
	}

	for idx, line := range strings.Split(content, "\n") {
		link, err := parseLine(line, idx)
		if err != nil {
			return nil, err
		}

		cfg.Links = append(cfg.Links, link)
	}

	return &cfg, nil
}

func parseLine(line string, idx int) (Link, error) {
	kind, params, found := strings.Cut(line, "=")
	if !found {
		return Link{}, fmt.Errorf("invalid syntax on line %d", idx)
	}

	kind = strings.TrimSpace(kind)
	params = strings.TrimSpace(params)

	var sudo bool
	switch kind {
	case "link":
		sudo = false
	case "sudolink":
		sudo = true
	default:
		return Link{}, fmt.Errorf("config only supports 'link' and 'sudolink'. Invalid kind %q on line %d", kind, idx)
	}

	if params == "" {
		return Link{}, fmt.Errorf("invalid number of values on line %d. The supported syntax is '<kind> = <from> <to>'. Found 0 args", idx)
	}

	match := paramsPattern.FindStringSubmatch(params)
	if match == nil {
		argCount := len(strings.Fields(params))
		if argCount != 2 {
			return Link{}, fmt.Errorf("invalid number of values on line %d. The supported syntax is '<kind> = <from> <to>'. Found %d args", idx, argCount)
		}

		return Link{}, fmt.Errorf("invalid path syntax on line %d. The supported syntax is '<kind> = <from> <to>'", idx)
	}

	from, err := expandKeywords(match[paramsPattern.SubexpIndex("from")])
	if err != nil {
		return Link{}, fmt.Errorf("%s on line %d", err, idx)
	}

	to, err := expandKeywords(match[paramsPattern.SubexpIndex("to")])
	if err != nil {
		return Link{}, fmt.Errorf("%s on line %d", err, idx)
	}

	return Link{From: from, To: to, Sudo: sudo}, nil
}

func expandKeywords(text string) (string, error) {
	if strings.Contains(text, "!") &&
		!strings.Contains(text, "!here") &&
		!strings.Contains(text, "!home") &&
		!strings.Contains(text, "!xdg_conf") {
		return "", fmt.Errorf("invalid keyword in %s", text)
	}

	expanded := text
	if strings.Contains(expanded, "!here") {
		here, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve !here: %s", err)
		}

		expanded = strings.ReplaceAll(expanded, "!here", here)
	}

	if strings.Contains(expanded, "!home") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve !home: %s", err)
		}

		expanded = strings.ReplaceAll(expanded, "!home", home)
	}

	expanded = strings.ReplaceAll(expanded, "!xdg_conf", xdg.ConfigHome)
	return expanded, nil
}
