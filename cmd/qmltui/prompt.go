package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-qmltui/pkg/greet"
	"github.com/goliatone/go-qmltui/pkg/qml"
	"github.com/goliatone/go-qmltui/pkg/renderers/prompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt [file]",
	Short: "Run the document as an interactive prompt session",
	Long: `Prompt walks the document's column: text lines are echoed, text fields
ask for input, buttons ask for confirmation. A name entered into the
nameField input is greeted on the way out, like the windowed build does.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := qml.ParseFile(documentPath(args))
		if err != nil {
			return err
		}

		greeter := greet.New()
		values, err := prompt.New().Run(cmd.Context(), doc, greet.Resolver(greeter))
		if err != nil {
			return err
		}

		if name, ok := values["nameField"]; ok {
			cmd.Println(greeter.Greet(name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
