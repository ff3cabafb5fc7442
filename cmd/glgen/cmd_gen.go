package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/odvcencio/glgen/pkg/gen"
	"github.com/odvcencio/glgen/pkg/manifest"
)

func newGenCmd() *cobra.Command {
	var (
		manifestPath string
		output       string
		javaPackage  string
		className    string
		keepDup      bool
		quiet        bool
	)
	cmd := &cobra.Command{
		Use:   "gen [documents...]",
		Short: "Generate the wrapper class from reference pages",
		Long: `Reads the given reference pages in order and writes one Java source
file containing constant aliases and forwarding stubs. Documents may be
given as positional arguments or through a TOML manifest; positional
arguments and flags override the manifest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gen.Options{
				Inputs:         args,
				Output:         output,
				Package:        javaPackage,
				Class:          className,
				KeepDuplicates: keepDup,
			}
			if manifestPath != "" {
				m, err := manifest.Load(manifestPath)
				if err != nil {
					return err
				}
				if len(opts.Inputs) == 0 {
					opts.Inputs = m.Inputs
				}
				if opts.Output == "" {
					opts.Output = m.Output
				}
				if opts.Package == "" {
					opts.Package = m.Package
				}
				if opts.Class == "" {
					opts.Class = m.Class
				}
				if !cmd.Flags().Changed("keep-duplicates") {
					opts.KeepDuplicates = m.KeepDuplicates
				}
			}

			level := zerolog.InfoLevel
			if quiet {
				level = zerolog.WarnLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Logger()
			opts.Log = &log

			return gen.Run(opts)
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "TOML manifest describing the run")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the generated file")
	cmd.Flags().StringVar(&javaPackage, "package", "", "Java package of the generated class")
	cmd.Flags().StringVar(&className, "class", "", "name of the generated class")
	cmd.Flags().BoolVar(&keepDup, "keep-duplicates", false, "emit duplicate declarations instead of keeping the first")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings")
	return cmd
}
