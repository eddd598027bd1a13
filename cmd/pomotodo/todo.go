package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamyuentse/go-pomotodo/pkg/pomotodo"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage todos",
	Long:  `List, create, update and delete todos and their sub-todos.`,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Long: `List todos. Pending todos are shown by default; use --completed for
finished ones or --all for both.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		completed, _ := cmd.Flags().GetBool("completed")
		all, _ := cmd.Flags().GetBool("all")

		filter := &pomotodo.TodoFilter{}
		if !all {
			filter.Completed = pomotodo.Bool(completed)
		}

		for _, tf := range []struct {
			name string
			dst  **time.Time
		}{
			{"completed-after", &filter.CompletedAfter},
			{"completed-before", &filter.CompletedBefore},
		} {
			value, _ := cmd.Flags().GetString(tf.name)
			if value == "" {
				continue
			}
			t, err := parseTimeFlag(value)
			if err != nil {
				handleError(err)
			}
			*tf.dst = &t
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		todos, err := c.ListTodos(context.Background(), filter)
		if err != nil {
			handleError(err)
		}

		printTodoList(os.Stdout, todos, jsonOutput)
	},
}

var todoAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Create a todo",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var opts []pomotodo.CreateTodoOption

		if notice, _ := cmd.Flags().GetString("notice"); notice != "" {
			opts = append(opts, pomotodo.WithNotice(notice))
		}
		if pin, _ := cmd.Flags().GetBool("pin"); pin {
			opts = append(opts, pomotodo.WithPin(true))
		}
		if repeat, _ := cmd.Flags().GetString("repeat"); repeat != "" {
			rt := pomotodo.RepeatType(repeat)
			if !rt.Valid() {
				handleError(fmt.Errorf("invalid repeat type %q", repeat))
			}
			opts = append(opts, pomotodo.WithRepeatType(rt))
		}
		if remind, _ := cmd.Flags().GetString("remind"); remind != "" {
			t, err := parseTimeFlag(remind)
			if err != nil {
				handleError(err)
			}
			opts = append(opts, pomotodo.WithRemindTime(t))
		}
		if estimate, _ := cmd.Flags().GetUint("estimate"); estimate > 0 {
			opts = append(opts, pomotodo.WithEstimatedPomoCount(estimate))
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		todo, err := c.CreateTodo(context.Background(), args[0], opts...)
		if err != nil {
			handleError(err)
		}

		printTodo(os.Stdout, todo, jsonOutput)
	},
}

var todoShowCmd = &cobra.Command{
	Use:   "show <uuid>",
	Short: "Show a todo",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseUUIDArg(args[0])
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		todo, err := c.GetTodo(context.Background(), id)
		if err != nil {
			handleError(err)
		}

		printTodo(os.Stdout, todo, jsonOutput)
	},
}

var todoEditCmd = &cobra.Command{
	Use:   "edit <uuid>",
	Short: "Update a todo",
	Long:  `Update fields of a todo. Only the given flags are sent.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseUUIDArg(args[0])
		if err != nil {
			handleError(err)
		}

		var opts []pomotodo.UpdateTodoOption
		if cmd.Flags().Changed("description") {
			desc, _ := cmd.Flags().GetString("description")
			opts = append(opts, pomotodo.WithUpdateDescription(desc))
		}
		if cmd.Flags().Changed("notice") {
			notice, _ := cmd.Flags().GetString("notice")
			opts = append(opts, pomotodo.WithUpdateNotice(notice))
		}
		if cmd.Flags().Changed("pin") {
			pin, _ := cmd.Flags().GetBool("pin")
			opts = append(opts, pomotodo.WithUpdatePin(pin))
		}
		if cmd.Flags().Changed("repeat") {
			repeat, _ := cmd.Flags().GetString("repeat")
			rt := pomotodo.RepeatType(repeat)
			if !rt.Valid() {
				handleError(fmt.Errorf("invalid repeat type %q", repeat))
			}
			opts = append(opts, pomotodo.WithUpdateRepeatType(rt))
		}
		if cmd.Flags().Changed("remind") {
			remind, _ := cmd.Flags().GetString("remind")
			t, err := parseTimeFlag(remind)
			if err != nil {
				handleError(err)
			}
			opts = append(opts, pomotodo.WithUpdateRemindTime(t))
		}
		if len(opts) == 0 {
			handleError(fmt.Errorf("no fields to update"))
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		todo, err := c.UpdateTodo(context.Background(), id, opts...)
		if err != nil {
			handleError(err)
		}

		printTodo(os.Stdout, todo, jsonOutput)
	},
}

var todoDoneCmd = &cobra.Command{
	Use:   "done <uuid>",
	Short: "Complete a todo",
	Long:  `Mark a todo as completed. Use --undo to reopen it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		undo, _ := cmd.Flags().GetBool("undo")

		id, err := parseUUIDArg(args[0])
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		todo, err := c.UpdateTodo(context.Background(), id,
			pomotodo.WithUpdateCompleted(!undo))
		if err != nil {
			handleError(err)
		}

		printTodo(os.Stdout, todo, jsonOutput)
	},
}

var todoRmCmd = &cobra.Command{
	Use:   "rm <uuid>",
	Short: "Delete a todo",
	Long:  `Delete a todo together with its sub-todos.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseUUIDArg(args[0])
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		if err := c.DeleteTodo(context.Background(), id); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, "Todo deleted", jsonOutput)
	},
}

var todoSubsCmd = &cobra.Command{
	Use:   "subs <uuid>",
	Short: "List the sub-todos of a todo",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseUUIDArg(args[0])
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		subs, err := c.ListSubTodos(context.Background(), id)
		if err != nil {
			handleError(err)
		}

		printSubTodoList(os.Stdout, subs, jsonOutput)
	},
}

var todoSubAddCmd = &cobra.Command{
	Use:   "sub-add <uuid> <description>",
	Short: "Add a sub-todo to a todo",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseUUIDArg(args[0])
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		sub, err := c.CreateSubTodo(context.Background(), id, args[1])
		if err != nil {
			handleError(err)
		}

		printSubTodoList(os.Stdout, []*pomotodo.SubTodo{sub}, jsonOutput)
	},
}

var todoSubDoneCmd = &cobra.Command{
	Use:   "sub-done <todo-uuid> <sub-uuid>",
	Short: "Complete a sub-todo",
	Long:  `Mark a sub-todo as completed. Use --undo to reopen it.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		undo, _ := cmd.Flags().GetBool("undo")

		parentID, err := parseUUIDArg(args[0])
		if err != nil {
			handleError(err)
		}
		subID, err := parseUUIDArg(args[1])
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		sub, err := c.UpdateSubTodo(context.Background(), parentID, subID,
			pomotodo.WithSubTodoCompleted(!undo))
		if err != nil {
			handleError(err)
		}

		printSubTodoList(os.Stdout, []*pomotodo.SubTodo{sub}, jsonOutput)
	},
}

var todoSubRmCmd = &cobra.Command{
	Use:   "sub-rm <todo-uuid> <sub-uuid>",
	Short: "Delete a sub-todo",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		parentID, err := parseUUIDArg(args[0])
		if err != nil {
			handleError(err)
		}
		subID, err := parseUUIDArg(args[1])
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		if err := c.DeleteSubTodo(context.Background(), parentID, subID); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, "Sub-todo deleted", jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(todoCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoShowCmd)
	todoCmd.AddCommand(todoEditCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoRmCmd)
	todoCmd.AddCommand(todoSubsCmd)
	todoCmd.AddCommand(todoSubAddCmd)
	todoCmd.AddCommand(todoSubDoneCmd)
	todoCmd.AddCommand(todoSubRmCmd)

	todoListCmd.Flags().Bool("completed", false, "List completed todos instead of pending ones")
	todoListCmd.Flags().Bool("all", false, "List both pending and completed todos")
	todoListCmd.Flags().String("completed-after", "", "Only todos completed after this time")
	todoListCmd.Flags().String("completed-before", "", "Only todos completed before this time")

	todoAddCmd.Flags().String("notice", "", "Notice text for the todo")
	todoAddCmd.Flags().Bool("pin", false, "Pin the todo to the top of the list")
	todoAddCmd.Flags().String("repeat", "", "Repeat type (none, each_day, each_week, each_two_week, each_month, each_year)")
	todoAddCmd.Flags().String("remind", "", "Reminder time")
	todoAddCmd.Flags().Uint("estimate", 0, "Estimated number of pomos")

	todoEditCmd.Flags().String("description", "", "New description")
	todoEditCmd.Flags().String("notice", "", "New notice text")
	todoEditCmd.Flags().Bool("pin", false, "Pin or unpin the todo")
	todoEditCmd.Flags().String("repeat", "", "New repeat type")
	todoEditCmd.Flags().String("remind", "", "New reminder time")

	todoDoneCmd.Flags().Bool("undo", false, "Reopen a completed todo")
	todoSubDoneCmd.Flags().Bool("undo", false, "Reopen a completed sub-todo")
}
