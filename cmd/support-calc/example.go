package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cpilink/support-calculator/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write an example calculation request",
	Long:  `Write an example YAML request to the given file, or stdout.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		request := config.NewInputParser().CreateExampleRequest()
		data, err := yaml.Marshal(request)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("failed to write example request: %w", err)
			}
			fmt.Printf("Example request written to %s\n", args[0])
			return nil
		}

		_, err = os.Stdout.Write(data)
		return err
	},
}
