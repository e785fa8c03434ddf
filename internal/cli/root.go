package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tgienger/todo/internal/config"
	"github.com/tgienger/todo/internal/ui"
)

// Options configures the root command
type Options struct {
	Version string
	Commit  string
	Date    string

	// Open loads the store for a command; defaults to OpenSession
	Open func(configPath string) (*Session, error)
}

type runner struct {
	opts       Options
	configPath string
}

// NewRootCommand builds the todo command tree
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Open == nil {
		opts.Open = OpenSession
	}
	r := &runner{opts: opts}

	root := &cobra.Command{
		Use:   "todo",
		Short: "A single-user task list",
		Long: `todo keeps a personal task list on this machine.

Run without arguments to open the interactive list, or use the subcommands
to script it.`,
		Args:          cobra.NoArgs,
		RunE:          r.withSession(runInteractive),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", opts.Version, opts.Commit, opts.Date)

	// Global flags
	root.PersistentFlags().StringVarP(&r.configPath, "config", "c", config.DefaultPath(), "config file")

	root.AddCommand(
		r.newAddCmd(),
		r.newListCmd(),
		r.newToggleCmd(),
		r.newEditCmd(),
		r.newRemoveCmd(),
		r.newClearCmd(),
		r.newStatsCmd(),
		r.newExportCmd(),
		r.newImportCmd(),
		r.newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute(opts Options) error {
	if err := NewRootCommand(opts).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// withSession opens the store around a command
func (r *runner) withSession(fn func(cmd *cobra.Command, args []string, s *Session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := r.opts.Open(r.configPath)
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(cmd, args, s)
	}
}

func runInteractive(cmd *cobra.Command, _ []string, s *Session) error {
	app := ui.NewApp(s.Store, s.Settings)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}

func (r *runner) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todo %s (commit: %s, built: %s)\n", r.opts.Version, r.opts.Commit, r.opts.Date)
		},
	}
}
