package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	greenscreen "github.com/greenscreenhq/greenscreen"
)

var validateCmd = &cobra.Command{
	Use:   "validate <screen>",
	Short: "Check inputs against a screen's field rules",
	Long: `Runs field validation for the named screen without connecting to any
host. Reports every rule violation, not just the first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All fields valid.")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringArrayP("input", "i", nil, "Field value as name=value (repeatable)")
}

func runValidate(cmd *cobra.Command, name string) error {
	store := openStore(cmd)
	def, err := store.Get(context.Background(), name)
	if err != nil {
		return err
	}

	inputs, err := parseInputs(cmd)
	if err != nil {
		return err
	}

	eng := greenscreen.New()
	ok, messages := eng.Validate(def, inputs)
	for _, msg := range messages {
		fmt.Println(msg)
	}
	if !ok {
		return fmt.Errorf("%d field(s) rejected", countErrors(messages))
	}
	return nil
}

func countErrors(messages []string) int {
	n := 0
	for _, msg := range messages {
		if !strings.HasPrefix(msg, "ok:") {
			n++
		}
	}
	return n
}
