package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-qmltui/pkg/greet"
	"github.com/goliatone/go-qmltui/pkg/qml"
	"github.com/goliatone/go-qmltui/pkg/render"
	"github.com/goliatone/go-qmltui/pkg/renderers/grid"
	"github.com/goliatone/go-qmltui/pkg/surface/tcellgrid"
	"github.com/goliatone/go-qmltui/pkg/theme"
)

var renderThemePath string

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Draw the document on the terminal screen",
	Long: `Render parses the document and draws it centered on the terminal,
then waits for a key press before restoring the screen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := qml.ParseFile(documentPath(args))
		if err != nil {
			return err
		}

		th := theme.Default()
		if renderThemePath != "" {
			if th, err = theme.LoadFile(renderThemePath); err != nil {
				return err
			}
		}

		screen, err := tcellgrid.New(tcellgrid.WithTheme(th))
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()

		resolver := greet.Resolver(greet.New())
		if err := grid.New().Render(cmd.Context(), doc, render.Options{
			Surface:  screen,
			Resolver: resolver,
		}); err != nil {
			return err
		}

		footerRow := screen.Rows() - 1
		if footerRow < 0 {
			footerRow = 0
		}
		screen.DrawText(footerRow, 1, "Press any key to exit")
		screen.Refresh()
		screen.WaitKey()
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderThemePath, "theme", "", "YAML theme file for screen colors")
	rootCmd.AddCommand(renderCmd)
}
