package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/tuinput/input"
	"github.com/zjrosen/tuinput/internal/config"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect and repair snapshot files",
	Long: `Inspect and repair the {value, cursor} snapshot files written by --state.

A snapshot whose cursor lies outside its value is clamped when loaded.`,
}

var stateShowCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a snapshot as it would be restored",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateShow,
}

var stateRepairCmd = &cobra.Command{
	Use:   "repair FILE",
	Short: "Clamp an out-of-range cursor in place",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateRepair,
}

func init() {
	stateShowCmd.Flags().StringP("format", "f", "",
		`output format: "yaml" or "json" (default: from the file extension)`)

	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateRepairCmd)
	rootCmd.AddCommand(stateCmd)
}

func runStateShow(cmd *cobra.Command, args []string) error {
	path := args[0]

	format := config.FormatForPath(path)
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		parsed, err := config.ParseStateFormat(f)
		if err != nil {
			return err
		}
		format = parsed
	}

	snap, err := config.LoadSnapshot(path)
	if err != nil {
		return err
	}
	if fixed := snap.Repaired(); fixed != snap {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "note: cursor %d clamped to %d\n", snap.Cursor, fixed.Cursor)
	}

	data, err := config.EncodeState(input.FromSnapshot(snap), format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runStateRepair(cmd *cobra.Command, args []string) error {
	path := args[0]

	changed, err := config.RepairState(path)
	if err != nil {
		return err
	}
	if changed {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "repaired %s\n", path)
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	}
	return nil
}
