package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/LFroesch/rover/internal/config"
	"github.com/LFroesch/rover/internal/logger"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		resultFile string
		noLog      bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "rover [directory]",
		Short: "A keyboard-driven terminal file manager",
		Long: `rover browses one directory at a time with vi-style keys, creates,
renames, removes, copies and moves files, and remembers where you have been.

On :q the final directory is printed to stdout, so a shell wrapper can cd
into it:

    cd "$(rover)"`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := startDir(args)
			if err != nil {
				return err
			}

			if noLog {
				logger.Disable()
			} else {
				if err := logger.Init(); err != nil {
					fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
				}
				defer logger.Close()
			}
			logger.SetDebug(debug)

			cfg := config.Load(configPath)

			final, err := run(start, cfg)
			if err != nil {
				return err
			}
			if final == "" {
				// interrupted
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), final)
			if resultFile != "" {
				if err := os.WriteFile(resultFile, []byte(final+"\n"), 0644); err != nil {
					return fmt.Errorf("cannot write result file: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/rover/rover-config.json)")
	cmd.Flags().StringVar(&resultFile, "result-file", "", "also write the final directory to this file")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "don't write ~/.config/rover/rover.log")
	cmd.Flags().BoolVar(&debug, "debug", false, "log debug lines")

	return cmd
}

// startDir resolves the optional directory argument to an absolute path
func startDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("error resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

// run drives the program and returns the directory to report, or "" when
// the user interrupted.
func run(start string, cfg *config.Config) (string, error) {
	m, err := newModel(afero.NewOsFs(), start, cfg)
	if err != nil {
		return "", err
	}

	// The UI goes to stderr so stdout carries only the result.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(*model).result, nil
}
