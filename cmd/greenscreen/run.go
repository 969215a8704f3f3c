package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	greenscreen "github.com/greenscreenhq/greenscreen"
	"github.com/greenscreenhq/greenscreen/internal/adapters/capture"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <screen>",
	Short: "Execute a screen flow against a live host",
	Long: `Loads the named screen definition, validates the supplied inputs,
connects to the host terminal and walks the navigation steps.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFlow(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	addHostFlags(runCmd)
	runCmd.Flags().StringArrayP("input", "i", nil, "Field value as name=value (repeatable, order matters)")
	runCmd.Flags().String("capture-dir", os.Getenv("GREENSCREEN_CAPTURE_DIR"), "Directory for HTML screen captures (empty disables capture)")
}

func runFlow(cmd *cobra.Command, name string) error {
	logger := newLogger(cmd)
	store := openStore(cmd)

	inputs, err := parseInputs(cmd)
	if err != nil {
		return err
	}

	opts := []greenscreen.Option{
		greenscreen.WithLogger(logger),
		greenscreen.WithStore(store),
	}
	if dir, _ := cmd.Flags().GetString("capture-dir"); dir != "" {
		rec, err := capture.New(dir, name)
		if err != nil {
			return fmt.Errorf("capture dir: %w", err)
		}
		opts = append(opts, greenscreen.WithRecorder(rec))
		fmt.Printf("Capturing screens to %s\n", rec.Dir())
	}
	eng := greenscreen.New(opts...)

	sess, err := connectHost(cmd, logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	result, err := eng.RunScreen(context.Background(), name, inputs, sess)
	if result != nil {
		for _, msg := range result.Messages {
			fmt.Println(msg)
		}
	}
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("flow did not complete successfully")
	}
	return nil
}

// parseInputs turns repeated --input name=value flags into an ordered
// input set. Flag order is preserved; it decides positional placeholder
// filling.
func parseInputs(cmd *cobra.Command) (*domain.Inputs, error) {
	raw, _ := cmd.Flags().GetStringArray("input")
	inputs := domain.NewInputs()
	for _, kv := range raw {
		name, value, found := strings.Cut(kv, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("malformed --input %q (want name=value)", kv)
		}
		inputs.Set(name, value)
	}
	return inputs, nil
}
