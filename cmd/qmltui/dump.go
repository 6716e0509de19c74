package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-qmltui/pkg/greet"
	"github.com/goliatone/go-qmltui/pkg/orchestrator"
	"github.com/goliatone/go-qmltui/pkg/qml"
	"github.com/goliatone/go-qmltui/pkg/surface"
)

var (
	dumpRows int
	dumpCols int
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print the draw operations instead of drawing",
	Long: `Dump renders the document into an in-memory surface of the given size
and prints each draw operation as "row:col text". Useful for inspecting
layout without taking over the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recorder := surface.NewRecorder(dumpRows, dumpCols)

		gen := orchestrator.New(orchestrator.WithResolver(greet.Resolver(greet.New())))
		err := gen.Run(cmd.Context(), orchestrator.Request{
			Source:  qml.SourceFromFile(documentPath(args)),
			Surface: recorder,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		label := color.New(color.FgCyan)
		fmt.Fprintf(out, "%s %dx%d, %d draw(s)\n",
			label.Sprint("surface"), dumpRows, dumpCols, len(recorder.Ops))
		for _, op := range recorder.Ops {
			fmt.Fprintf(out, "%s %s\n", label.Sprintf("%3d:%-3d", op.Row, op.Col), op.Text)
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().IntVar(&dumpRows, "rows", 24, "surface row count")
	dumpCmd.Flags().IntVar(&dumpCols, "cols", 80, "surface column count")
	rootCmd.AddCommand(dumpCmd)
}
