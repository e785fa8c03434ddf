package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgienger/todo/internal/models"
	"github.com/tgienger/todo/internal/query"
	"github.com/tgienger/todo/internal/store"
)

var (
	errTaskNotFound = errors.New("no task matches that id")
	errAmbiguousID  = errors.New("id prefix matches more than one task")
)

// shortIDLen is how much of an id the list output shows
const shortIDLen = 8

// resolveID finds the task whose id equals or uniquely starts with prefix
func resolveID(st *store.Store, prefix string) (models.Task, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return models.Task{}, errTaskNotFound
	}
	if t, ok := st.Get(prefix); ok {
		return t, nil
	}

	var found []models.Task
	for _, t := range st.Tasks() {
		if strings.HasPrefix(t.ID, prefix) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return models.Task{}, fmt.Errorf("%w: %s", errTaskNotFound, prefix)
	case 1:
		return found[0], nil
	}
	return models.Task{}, fmt.Errorf("%w: %s", errAmbiguousID, prefix)
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func printTask(w io.Writer, t models.Task) {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	fmt.Fprintf(w, "%s %s  %-6s  %s\n", check, shortID(t.ID), t.Priority, t.Title)
	if t.Description != "" {
		for _, line := range strings.Split(t.Description, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

func (r *runner) newAddCmd() *cobra.Command {
	var (
		description string
		priority    string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.withSession(func(cmd *cobra.Command, args []string, s *Session) error {
			in := models.TaskInput{
				Title:       strings.Join(args, " "),
				Description: description,
			}
			if priority != "" {
				p, err := models.ParsePriority(priority)
				if err != nil {
					return err
				}
				in.Priority = p
			}

			t, err := s.Store.Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", shortID(t.ID), t.Title)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high (default medium)")
	return cmd
}

func (r *runner) newListCmd() *cobra.Command {
	var (
		filter string
		search string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, newest first",
		Args:    cobra.NoArgs,
		RunE: r.withSession(func(cmd *cobra.Command, _ []string, s *Session) error {
			f, err := models.ParseFilter(filter)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tasks := query.Project(s.Store.Tasks(), query.Query{Search: search, Filter: f})
			if len(tasks) == 0 {
				if strings.TrimSpace(search) != "" {
					fmt.Fprintln(w, "No tasks found")
				} else {
					fmt.Fprintln(w, "No tasks yet")
				}
			}
			for _, t := range tasks {
				printTask(w, t)
			}
			fmt.Fprintln(w, s.Store.Stats().Summary())
			return nil
		}),
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(models.FilterAll), "all, active or completed")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only tasks whose title or description contains this")
	return cmd
}

func (r *runner) newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task done, or not done",
		Args:    cobra.ExactArgs(1),
		RunE: r.withSession(func(cmd *cobra.Command, args []string, s *Session) error {
			t, err := resolveID(s.Store, args[0])
			if err != nil {
				return err
			}
			updated := s.Store.Toggle(t.ID)
			if updated == nil {
				return fmt.Errorf("%w: %s", errTaskNotFound, args[0])
			}
			state := "active"
			if updated.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", shortID(updated.ID), updated.Title, state)
			return nil
		}),
	}
}

func (r *runner) newEditCmd() *cobra.Command {
	var (
		title       string
		description string
		priority    string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's title, description or priority",
		Args:  cobra.ExactArgs(1),
		RunE: r.withSession(func(cmd *cobra.Command, args []string, s *Session) error {
			t, err := resolveID(s.Store, args[0])
			if err != nil {
				return err
			}

			var patch models.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("priority") {
				p, err := models.ParsePriority(priority)
				if err != nil {
					return err
				}
				patch.Priority = &p
			}
			if patch.Empty() {
				return errors.New("nothing to change: pass --title, --description or --priority")
			}

			updated, err := s.Store.Update(t.ID, patch)
			if err != nil {
				return err
			}
			if updated == nil {
				return fmt.Errorf("%w: %s", errTaskNotFound, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", shortID(updated.ID), updated.Title)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high")
	return cmd
}

func (r *runner) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: r.withSession(func(cmd *cobra.Command, args []string, s *Session) error {
			t, err := resolveID(s.Store, args[0])
			if err != nil {
				return err
			}
			s.Store.Delete(t.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", shortID(t.ID), t.Title)
			return nil
		}),
	}
}

func (r *runner) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed task",
		Args:  cobra.NoArgs,
		RunE: r.withSession(func(cmd *cobra.Command, _ []string, s *Session) error {
			n := s.Store.ClearCompleted()
			noun := "tasks"
			if n == 1 {
				noun = "task"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed %s\n", n, noun)
			return nil
		}),
	}
}

func (r *runner) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		Args:  cobra.NoArgs,
		RunE: r.withSession(func(cmd *cobra.Command, _ []string, s *Session) error {
			st := s.Store.Stats()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "total: %d  active: %d  completed: %d\n", st.Total, st.Active, st.Completed)
			fmt.Fprintln(w, st.Summary())
			return nil
		}),
	}
}

func (r *runner) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the stored task list as JSON",
		Args:  cobra.NoArgs,
		RunE: r.withSession(func(cmd *cobra.Command, _ []string, s *Session) error {
			data, err := store.Encode(s.Store.Tasks())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if _, err := w.Write(data); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return nil
		}),
	}
}

func (r *runner) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the task list with an exported JSON array",
		Long: `Replace the task list with an exported JSON array.

The format is the one written by "todo export". Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: r.withSession(func(cmd *cobra.Command, args []string, s *Session) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read import: %w", err)
			}

			tasks, skipped, err := store.Decode(data)
			if err != nil {
				return err
			}
			skipped += s.Store.Replace(tasks)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks (skipped %d)\n", len(s.Store.Tasks()), skipped)
			return nil
		}),
	}
}
