package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbdm-dev/dbdm/config"
	"github.com/dbdm-dev/dbdm/filesystem"
	"github.com/dbdm-dev/dbdm/sync"
)

var configPath string
var force bool

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}

		path = filepath.Join(pwd, "dbdm.conf")
		if _, err := os.Lstat(path); err != nil {
			alt := filepath.Join(pwd, "dbdm.toml")
			if _, altErr := os.Lstat(alt); altErr != nil {
				return nil, fmt.Errorf("dbdm.conf does not exist in %s", pwd)
			}

			path = alt
		}
	}

	return config.Load(path)
}

func linkSpecs(cfg *config.Config) []sync.LinkSpec {
	links := make([]sync.LinkSpec, len(cfg.Links))
	for i, link := range cfg.Links {
		links[i] = sync.LinkSpec{
			From: filesystem.Path(link.From),
			To:   filesystem.Path(link.To),
		}
	}

	return links
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Apply config links to the filesystem",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}

		prompter := &sync.SurveyPrompter{Out: os.Stdout}

		err = sync.Run(linkSpecs(cfg), force, prompter, os.Stdout)
		if errors.Is(err, sync.ErrAborted) {
			fmt.Println("Aborted.")
			return
		}

		if err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&force, "force", "f", false, "replace conflicting destinations without prompting or backups")
}
