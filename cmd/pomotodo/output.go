package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/kamyuentse/go-pomotodo/pkg/pomotodo"
)

const timeFormat = "2006-01-02 15:04:05"

// printAccount prints the authenticated account profile
func printAccount(w io.Writer, account *pomotodo.Account, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(account)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Username:\t%s\n", account.Username)
	fmt.Fprintf(tw, "Email:\t%s\n", account.Email)
	fmt.Fprintf(tw, "Timezone:\t%s\n", account.Timezone)
	fmt.Fprintf(tw, "Registered:\t%s\n", account.RegisterTime.Local().Format(timeFormat))
	if !account.ProExpiresTime.IsZero() {
		fmt.Fprintf(tw, "Pro Expires:\t%s\n", account.ProExpiresTime.Local().Format(timeFormat))
	}
	tw.Flush()
}

// printPomo prints a single pomo
func printPomo(w io.Writer, pomo *pomotodo.Pomo, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(pomo)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "UUID:\t%s\n", pomo.UUID)
	fmt.Fprintf(tw, "Description:\t%s\n", pomo.Description)
	fmt.Fprintf(tw, "Started:\t%s\n", pomo.StartedAt.Local().Format(timeFormat))
	fmt.Fprintf(tw, "Ended:\t%s\n", pomo.EndedAt.Local().Format(timeFormat))
	fmt.Fprintf(tw, "Length:\t%s\n", lengthString(pomo.Length))
	fmt.Fprintf(tw, "Abandoned:\t%t\n", pomo.Abandoned)
	fmt.Fprintf(tw, "Manual:\t%t\n", pomo.Manual)
	fmt.Fprintf(tw, "Created:\t%s\n", pomo.CreatedAt.Local().Format(timeFormat))
	fmt.Fprintf(tw, "Updated:\t%s\n", pomo.UpdatedAt.Local().Format(timeFormat))
	tw.Flush()
}

// printPomoList prints a list of pomos
func printPomoList(w io.Writer, pomos []*pomotodo.Pomo, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(pomos)
		return
	}

	if len(pomos) == 0 {
		fmt.Fprintln(w, "No pomos found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "UUID\tDESCRIPTION\tSTARTED\tLENGTH\tFLAGS\n")
	fmt.Fprintf(tw, "----\t-----------\t-------\t------\t-----\n")
	for _, pomo := range pomos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			pomo.UUID,
			truncate(pomo.Description, 40),
			pomo.StartedAt.Local().Format(timeFormat),
			lengthString(pomo.Length),
			pomoFlags(pomo))
	}
	tw.Flush()
}

// printTodo prints a single todo
func printTodo(w io.Writer, todo *pomotodo.Todo, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(todo)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "UUID:\t%s\n", todo.UUID)
	fmt.Fprintf(tw, "Description:\t%s\n", todo.Description)
	fmt.Fprintf(tw, "Completed:\t%t\n", todo.Completed)
	if todo.CompletedAt != nil {
		fmt.Fprintf(tw, "Completed At:\t%s\n", todo.CompletedAt.Local().Format(timeFormat))
	}
	fmt.Fprintf(tw, "Pinned:\t%t\n", todo.Pin)
	if todo.Notice != nil && *todo.Notice != "" {
		fmt.Fprintf(tw, "Notice:\t%s\n", *todo.Notice)
	}
	if todo.RepeatType != "" && todo.RepeatType != pomotodo.RepeatNone {
		fmt.Fprintf(tw, "Repeats:\t%s\n", todo.RepeatType)
	}
	if todo.RemindTime != nil {
		fmt.Fprintf(tw, "Remind At:\t%s\n", todo.RemindTime.Local().Format(timeFormat))
	}
	if todo.EstimatedPomoCount > 0 {
		fmt.Fprintf(tw, "Estimated Pomos:\t%d\n", todo.EstimatedPomoCount)
	}
	if todo.CostedPomoCount > 0 {
		fmt.Fprintf(tw, "Costed Pomos:\t%d\n", todo.CostedPomoCount)
	}
	if len(todo.SubTodos) > 0 {
		fmt.Fprintf(tw, "Sub-todos:\t%d\n", len(todo.SubTodos))
	}
	fmt.Fprintf(tw, "Created:\t%s\n", todo.CreatedAt.Local().Format(timeFormat))
	fmt.Fprintf(tw, "Updated:\t%s\n", todo.UpdatedAt.Local().Format(timeFormat))
	tw.Flush()
}

// printTodoList prints a list of todos
func printTodoList(w io.Writer, todos []*pomotodo.Todo, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(todos)
		return
	}

	if len(todos) == 0 {
		fmt.Fprintln(w, "No todos found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "UUID\tDESCRIPTION\tSTATUS\tSUBS\n")
	fmt.Fprintf(tw, "----\t-----------\t------\t----\n")
	for _, todo := range todos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			todo.UUID,
			truncate(todo.Description, 40),
			todoStatus(todo),
			len(todo.SubTodos))
	}
	tw.Flush()
}

// printSubTodoList prints the sub-todos of a todo
func printSubTodoList(w io.Writer, subs []*pomotodo.SubTodo, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(subs)
		return
	}

	if len(subs) == 0 {
		fmt.Fprintln(w, "No sub-todos found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "UUID\tDESCRIPTION\tSTATUS\n")
	fmt.Fprintf(tw, "----\t-----------\t------\n")
	for _, sub := range subs {
		status := "pending"
		if sub.Completed {
			status = "done"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			sub.UUID,
			truncate(sub.Description, 40),
			status)
	}
	tw.Flush()
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// printSuccess prints a success message
func printSuccess(w io.Writer, message string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"message": message,
		})
		return
	}

	fmt.Fprintln(w, message)
}

// todoStatus converts a todo state to a human-readable string
func todoStatus(todo *pomotodo.Todo) string {
	switch {
	case todo.Completed:
		return "done"
	case todo.Pin:
		return "pinned"
	default:
		return "pending"
	}
}

// pomoFlags summarizes the boolean flags of a pomo
func pomoFlags(pomo *pomotodo.Pomo) string {
	switch {
	case pomo.Abandoned:
		return "abandoned"
	case pomo.Manual:
		return "manual"
	default:
		return ""
	}
}

// lengthString formats a pomo length in seconds as a duration
func lengthString(seconds uint) string {
	return (time.Duration(seconds) * time.Second).String()
}

// truncate truncates a string to the specified number of runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
