package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"daily-planner/internal/models"
	"daily-planner/internal/planner"
)

// list の出力形式
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// newListCommand は list コマンドを作成します。
func newListCommand(g *globalOptions) *cobra.Command {
	var opts struct {
		Date   string
		Format string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks of a day",
		Long: `List the tasks whose date matches the selected day.

Examples:
  # Today's tasks
  planner list

  # Tasks of a given day as YAML
  planner list --date 2024-05-01 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.Format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", opts.Format)
			}

			date, err := parseDate(opts.Date)
			if err != nil {
				return err
			}
			p, err := g.openPlanner(cmd, date)
			if err != nil {
				return err
			}

			visible := p.Visible()
			out := cmd.OutOrStdout()
			switch opts.Format {
			case formatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(visible)
			case formatYAML:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(visible); err != nil {
					return err
				}
				return enc.Close()
			default:
				return printTasks(out, planner.DateKey(p.Date()), visible)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Day to show, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "Output format: text, json or yaml")

	return cmd
}

func printTasks(out io.Writer, date string, tasks []models.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintf(out, "No tasks for %s\n", date)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tDONE\tTIME\tPRIORITY\tTODO")
	for i, t := range tasks {
		done := "[ ]"
		if t.Completed {
			done = "[x]"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s-%s\t%s\t%s\n", i+1, done, t.StartTime, t.EndTime, t.Priority, t.Todo)
	}
	return w.Flush()
}

// newAddCommand は add コマンドを作成します。
func newAddCommand(g *globalOptions) *cobra.Command {
	var opts struct {
		Date     string
		Todo     string
		Start    string
		End      string
		Priority string
	}

	def := planner.DefaultDraft()

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a day",
		Long: `Add a task to the selected day. An empty todo adds nothing.

Examples:
  planner add --todo "Write report" --start 09:00 --end 10:00 --priority high`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 空のtodoはサーバーに問い合わせずに終了する
			if models.IsBlank(opts.Todo) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to add: todo is empty")
				return nil
			}
			priority := models.Priority(opts.Priority)
			if !priority.Valid() {
				return fmt.Errorf("invalid priority %q (want low, medium or high)", opts.Priority)
			}
			date, err := parseDate(opts.Date)
			if err != nil {
				return err
			}
			p, err := g.openPlanner(cmd, date)
			if err != nil {
				return err
			}

			draft := planner.Draft{
				Todo:      opts.Todo,
				StartTime: opts.Start,
				EndTime:   opts.End,
				Priority:  priority,
			}
			p.SetDraft(draft)
			if err := p.AddTask(cmd.Context(), draft); err != nil {
				return fmt.Errorf("add task: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", opts.Todo, planner.DateKey(p.Date()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Day of the task, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&opts.Todo, "todo", "t", "", "Task description")
	cmd.Flags().StringVar(&opts.Start, "start", def.StartTime, "Start time, HH:MM")
	cmd.Flags().StringVar(&opts.End, "end", def.EndTime, "End time, HH:MM")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", string(def.Priority), "Priority: low, medium or high")

	return cmd
}

// newDoneCommand は done コマンドを作成します。
func newDoneCommand(g *globalOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done <n>",
		Short: "Mark the n-th task of a day as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task number %q", args[0])
			}
			day, err := parseDate(date)
			if err != nil {
				return err
			}
			p, err := g.openPlanner(cmd, day)
			if err != nil {
				return err
			}
			task, err := visibleAt(p, n)
			if err != nil {
				return err
			}

			// 一覧上の位置をそのまま渡す
			if err := p.CompleteTask(cmd.Context(), task.ID, n-1); err != nil {
				return fmt.Errorf("complete task: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed %q\n", task.Todo)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Day of the task, YYYY-MM-DD (default today)")
	return cmd
}

// newRemoveCommand は rm コマンドを作成します。
func newRemoveCommand(g *globalOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"delete"},
		Short:   "Delete the n-th task of a day",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task number %q", args[0])
			}
			day, err := parseDate(date)
			if err != nil {
				return err
			}
			p, err := g.openPlanner(cmd, day)
			if err != nil {
				return err
			}
			task, err := visibleAt(p, n)
			if err != nil {
				return err
			}

			if err := p.DeleteTask(cmd.Context(), task.ID); err != nil {
				return fmt.Errorf("delete task: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", task.Todo)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Day of the task, YYYY-MM-DD (default today)")
	return cmd
}
