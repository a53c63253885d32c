package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/IsaacBreen/starfield"
	"github.com/IsaacBreen/starfield/display"
)

// Node is a tree record: children are passed positionally, the rest by keyword.
type Node struct {
	starfield.Record `name:"Node"`
	Children         []Node `starfield:"*"`
	Label            string `default:""`
	Weight           int    `default:"1"`
}

func main() {
	var (
		indent  int
		color   bool
		verbose bool
	)

	logger := func() zerolog.Logger {
		if !verbose {
			return zerolog.Nop()
		}
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	root := &cobra.Command{
		Use:           "starfield",
		Short:         "Build and display variadic record trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log record definitions")

	render := &cobra.Command{
		Use:   "render FILE",
		Short: "Build a Node tree from a YAML file and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newNode, err := starfield.Define[Node](starfield.WithRepr(), starfield.WithLogger(logger()))
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tree, err := newNode.FromYAML(data)
			if err != nil {
				return err
			}
			opts := []display.Option{display.WithIndent(indent)}
			if color {
				opts = append(opts, display.WithColor())
			}
			fmt.Fprintln(cmd.OutOrStdout(), display.Sprint(tree, opts...))
			return nil
		},
	}
	render.Flags().IntVar(&indent, "indent", 0, "Spaces per nesting level (0 prints on one line)")
	render.Flags().BoolVar(&color, "color", false, "Colour the output")

	usage := &cobra.Command{
		Use:   "usage",
		Short: "Print the Node constructor usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			newNode, err := starfield.Define[Node](starfield.WithLogger(logger()))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), newNode.Usage())
			return nil
		},
	}

	root.AddCommand(render, usage)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
