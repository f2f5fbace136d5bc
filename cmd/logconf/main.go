// File: lixenwraith/logconf/cmd/logconf/main.go
// Command logconf parses logger properties given as key=value arguments and
// prints the resolved configuration.
//
//	logconf --format yaml root=info logger.com.example=debug,Example,true
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/logconf"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		format string
		trace  bool
	)

	cmd := &cobra.Command{
		Use:   "logconf [key=value ...]",
		Short: "Resolve logger properties and print the result",
		Long: `logconf applies property-style logger configuration (debug, root and
logger.<name> keys) to an empty store and prints the resolved root and named
logger configs. Properties are applied in argument order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := parseArgs(args)
			if err != nil {
				return err
			}

			tracer := logconf.NopTracer()
			if trace {
				tracer = logconf.NewTracer(stderr)
			}

			store, err := logconf.NewBuilder().
				WithProperties(props).
				WithTracer(tracer).
				Build()
			if err != nil {
				return err
			}
			return store.Dump(stdout, format)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&format, "format", "f", logconf.FormatTOML, "output format (toml, yaml, json)")
	cmd.Flags().BoolVar(&trace, "trace", false, "write the parse trace to stderr")

	return cmd
}

// parseArgs turns "key=value" arguments into properties, splitting on the
// first '='.
func parseArgs(args []string) (*logconf.Properties, error) {
	props := logconf.NewProperties()
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid property %q: expected key=value", arg)
		}
		props.Set(key, value)
	}
	return props, nil
}
