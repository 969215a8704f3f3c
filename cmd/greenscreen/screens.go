package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenscreenhq/greenscreen/internal/adapters/file"
)

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "Manage screen definitions",
}

var screensListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored screen definitions",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore(cmd)
		names, err := store.List(context.Background())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(names) == 0 {
			fmt.Println("No screens stored.")
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var screensShowCmd = &cobra.Command{
	Use:   "show <screen>",
	Short: "Print a screen definition as YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore(cmd)
		def, err := store.Get(context.Background(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		out, err := file.Encode(def)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
	},
}

var screensDeleteCmd = &cobra.Command{
	Use:   "delete <screen>",
	Short: "Remove a stored screen definition",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore(cmd)
		if err := store.Delete(context.Background(), args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %q\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(screensCmd)
	screensCmd.AddCommand(screensListCmd)
	screensCmd.AddCommand(screensShowCmd)
	screensCmd.AddCommand(screensDeleteCmd)
}
