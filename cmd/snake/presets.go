package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/config"
)

var flagShowConfig bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows the difficulty presets accepted by 'snake play --preset'.

With --show, prints the resolved configuration (config file search
order applied) as YAML instead.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagShowConfig, "show", false, "Print the resolved configuration as YAML")
}

func runPresets(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagShowConfig {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	fmt.Fprintln(out, "Difficulty presets:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-6s  %-4s  %-5s  %s\n", "Name", "Speed", "Grow", "Level", "Description")
	fmt.Fprintf(out, "  %-8s  %-6s  %-4s  %-5s  %s\n", "----", "-----", "----", "-----", "-----------")
	for _, p := range config.Presets() {
		fmt.Fprintf(out, "  %-8s  %-6g  %-4d  %-5s  %s\n",
			p.Name, p.Speed, p.GrowRate, fmt.Sprintf("%.0f%%", p.Level*100), p.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snake play --preset <name>' to use one.")
	return nil
}
