package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "glgen",
		Short: "Generate a GL pass-through wrapper class from reference pages",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newGenCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("glgen 0.1.0-dev")
		},
	}
}
