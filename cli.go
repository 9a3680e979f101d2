package khat

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type CLIConfig struct {
	Options
	ConfigPath string
	Verbose    bool
	Completion string
}

var cfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "khat [flags] <file>",
	Short: "Print a file, optionally reversed.",
	Long: `Print the content of a file, like cat, optionally reversing it.

Use - as the file to read stdin. The reversal flags are mutually exclusive.

Example: khat -l notes.txt`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return handleCompletion(cmd)
		}

		opts := cfg.Options
		if len(args) > 0 {
			opts.Path = args[0]
		}

		fileCfg, err := LoadConfig(ConfigPath(cfg.ConfigPath))
		if err != nil {
			return err
		}

		logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
		app := NewApp(&opts, fileCfg, logger)
		app.stdin = cmd.InOrStdin()
		app.stdout = cmd.OutOrStdout()
		app.source.stdin = cmd.InOrStdin()

		return app.Run(cmd.Context())
	},
}

func handleCompletion(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	switch cfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(out)
	case "zsh":
		return cmd.Root().GenZshCompletion(out)
	case "fish":
		return cmd.Root().GenFishCompletion(out, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cfg.Completion)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&cfg.FullRev, "full-rev", "f", false, "Reverse the whole content")
	rootCmd.Flags().BoolVarP(&cfg.LineRev, "line-rev", "l", false, "Reverse the order of lines")
	rootCmd.Flags().BoolVarP(&cfg.CharsRev, "chars-rev", "c", false, "Reverse characters within each line")
	rootCmd.Flags().StringVar(&cfg.Code, "code", "", "Only print fenced code blocks of a markdown file, optionally of one language (--code=go)")
	rootCmd.Flags().Lookup("code").NoOptDefVal = AnyLanguage
	rootCmd.Flags().BoolVarP(&cfg.Clipboard, "clipboard", "b", false, "Read from the clipboard instead of a file")
	rootCmd.Flags().BoolVarP(&cfg.Copy, "copy", "y", false, "Also copy the result to the clipboard")
	rootCmd.Flags().BoolVarP(&cfg.Pager, "pager", "p", false, "View the result in a pager")
	rootCmd.Flags().StringVar(&cfg.ConfigPath, "config", "", "Config file (default $KHAT_CONFIG or user config dir)")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}

// ErrorColor reports whether errors should be styled, honoring the config
// file and NO_COLOR.
func ErrorColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	c, err := LoadConfig(ConfigPath(cfg.ConfigPath))
	if err != nil {
		return true
	}
	return c.Color
}
