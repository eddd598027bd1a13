package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamyuentse/go-pomotodo/pkg/pomotodo"
)

var pomoCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Manage pomos",
	Long:  `List, record, inspect and delete pomodoro work sessions.`,
}

var pomoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pomos",
	Long: `List recorded pomos.

Time filters accept RFC 3339 timestamps, '2006-01-02 15:04', or '2006-01-02'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		filter, err := pomoFilterFromFlags(cmd)
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		pomos, err := c.ListPomos(context.Background(), filter)
		if err != nil {
			handleError(err)
		}

		printPomoList(os.Stdout, pomos, jsonOutput)
	},
}

var pomoLogCmd = &cobra.Command{
	Use:   "log <description>",
	Short: "Record a finished pomo",
	Long: `Record a manually tracked pomo.

The start time is required. The end time may be given either directly
with --ended or as a duration with --length; --length is ignored when
--ended is set because the server derives the length from the interval.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startedFlag, _ := cmd.Flags().GetString("started")
		endedFlag, _ := cmd.Flags().GetString("ended")
		lengthFlag, _ := cmd.Flags().GetDuration("length")
		abandoned, _ := cmd.Flags().GetBool("abandoned")

		started, err := parseTimeFlag(startedFlag)
		if err != nil {
			handleError(err)
		}

		var ended time.Time
		var opts []pomotodo.CreatePomoOption
		switch {
		case endedFlag != "":
			ended, err = parseTimeFlag(endedFlag)
			if err != nil {
				handleError(err)
			}
		case lengthFlag > 0:
			opts = append(opts, pomotodo.WithLength(uint(lengthFlag/time.Second)))
		default:
			handleError(errors.New("either --ended or --length is required"))
		}
		if abandoned {
			opts = append(opts, pomotodo.WithAbandoned(true))
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		pomo, err := c.CreatePomo(context.Background(), args[0], started, ended, opts...)
		if err != nil {
			handleError(err)
		}

		printPomo(os.Stdout, pomo, jsonOutput)
	},
}

var pomoShowCmd = &cobra.Command{
	Use:   "show <uuid>",
	Short: "Show a pomo",
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

		pomo, err := c.GetPomo(context.Background(), id)
		if err != nil {
			handleError(err)
		}

		printPomo(os.Stdout, pomo, jsonOutput)
	},
}

var pomoRenameCmd = &cobra.Command{
	Use:   "rename <uuid> <description>",
	Short: "Rename a pomo",
	Long:  `Change the description of a pomo. No other field is editable after the fact.`,
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

		pomo, err := c.UpdatePomo(context.Background(), id, args[1])
		if err != nil {
			handleError(err)
		}

		printPomo(os.Stdout, pomo, jsonOutput)
	},
}

var pomoRmCmd = &cobra.Command{
	Use:   "rm <uuid>",
	Short: "Delete a pomo",
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

		if err := c.DeletePomo(context.Background(), id); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, "Pomo deleted", jsonOutput)
	},
}

// pomoFilterFromFlags builds a PomoFilter from the list command flags.
func pomoFilterFromFlags(cmd *cobra.Command) (*pomotodo.PomoFilter, error) {
	filter := &pomotodo.PomoFilter{}

	if cmd.Flags().Changed("abandoned") {
		abandoned, _ := cmd.Flags().GetBool("abandoned")
		filter.Abandoned = pomotodo.Bool(abandoned)
	}
	if cmd.Flags().Changed("manual") {
		manual, _ := cmd.Flags().GetBool("manual")
		filter.Manual = pomotodo.Bool(manual)
	}

	for _, tf := range []struct {
		name string
		dst  **time.Time
	}{
		{"started-after", &filter.StartedAfter},
		{"started-before", &filter.StartedBefore},
		{"ended-after", &filter.EndedAfter},
		{"ended-before", &filter.EndedBefore},
	} {
		value, _ := cmd.Flags().GetString(tf.name)
		if value == "" {
			continue
		}
		t, err := parseTimeFlag(value)
		if err != nil {
			return nil, err
		}
		*tf.dst = &t
	}

	return filter, nil
}

func init() {
	rootCmd.AddCommand(pomoCmd)
	pomoCmd.AddCommand(pomoListCmd)
	pomoCmd.AddCommand(pomoLogCmd)
	pomoCmd.AddCommand(pomoShowCmd)
	pomoCmd.AddCommand(pomoRenameCmd)
	pomoCmd.AddCommand(pomoRmCmd)

	pomoListCmd.Flags().Bool("abandoned", false, "Only pomos with the given abandoned state")
	pomoListCmd.Flags().Bool("manual", false, "Only pomos with the given manual state")
	pomoListCmd.Flags().String("started-after", "", "Only pomos started after this time")
	pomoListCmd.Flags().String("started-before", "", "Only pomos started before this time")
	pomoListCmd.Flags().String("ended-after", "", "Only pomos ended after this time")
	pomoListCmd.Flags().String("ended-before", "", "Only pomos ended before this time")

	pomoLogCmd.Flags().String("started", "", "Start time of the pomo (required)")
	pomoLogCmd.Flags().String("ended", "", "End time of the pomo")
	pomoLogCmd.Flags().Duration("length", 0, "Length of the pomo (e.g. 25m)")
	pomoLogCmd.Flags().Bool("abandoned", false, "Record the pomo as abandoned")
	pomoLogCmd.MarkFlagRequired("started")
}
