package main

import (
	"fmt"
	"os"

	"github.com/shiftwise/internal/config"
	"github.com/shiftwise/internal/work"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings and shift rules. Use --init to write the defaults to the config file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initFile, _ := cmd.Flags().GetBool("init"); initFile {
			if _, err := os.Stat(config.Path()); err == nil {
				return fmt.Errorf("config file already exists: %s", config.Path())
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", config.Path())
			return nil
		}

		fmt.Printf("Config: %s | DB=%s | Log level: %s | 24h: %v\n",
			config.Path(), cfg.DatabasePath, cfg.LogLevel, cfg.Use24Hour)
		fmt.Printf("Rules: Full day: %dmin | Half day: %dmin | Short leave: %dmin | Weekly target: %.1fh\n",
			cfg.FullDayMinutes, cfg.FullDayMinutes/2, cfg.FullDayMinutes-work.ShortLeaveOffsetMinutes, cfg.WeeklyHoursTarget)
		fmt.Printf("Leave: EL carry-forward cap: %.1f days | Holidays: %d across %d fiscal year(s)\n",
			cfg.MaxCarryForward, len(holidays), len(cfg.Holidays))
		return nil
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for shiftwise.

To load completions:

Bash:
  $ source <(shiftwise completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ shiftwise completion zsh > "${fpath[1]}/_shiftwise"

Fish:
  $ shiftwise completion fish > ~/.config/fish/completions/shiftwise.fish

PowerShell:
  PS> shiftwise completion powershell > shiftwise.ps1
  PS> . shiftwise.ps1
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletion(os.Stdout)
		}
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("init", false, "Write the current settings to the config file")
}
