package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dbdm-dev/dbdm/filesystem"
)

var (
	linkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unlinkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate config and planned links",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}

		for _, link := range cfg.Links {
			from := filesystem.Path(link.From).Canonicalize()
			to := filesystem.Path(link.To)

			linked := false
			if target, err := to.Readlink(); err == nil {
				linked = to.ResolveLinkTarget(target).Canonicalize() == from
			}

			line := fmt.Sprintf("%s -> %s", from, to.Canonicalize())
			if linked {
				fmt.Println(linkedStyle.Render(line))
			} else {
				fmt.Println(unlinkedStyle.Render(line))
			}
		}
	},
}
