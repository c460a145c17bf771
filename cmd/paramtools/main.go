// Command paramtools validates raw parameter values against YAML-declared
// parameter specs from the command line. It is a thin shell over the
// specfile and params packages, useful for smoke-testing a spec file
// before deploying it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/isvinogradov/paramtools"
	"github.com/isvinogradov/paramtools/params"
	"github.com/isvinogradov/paramtools/specfile"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("paramtools v%s\n", paramtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "check":
		if err := runCheck(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// multiFlag collects repeated -value flags in order.
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// checkFlags contains flags for the check command
type checkFlags struct {
	specsPath string
	name      string
	values    multiFlag
}

func setupCheckFlags() (*flag.FlagSet, *checkFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &checkFlags{}

	fs.StringVar(&flags.specsPath, "specs", "", "path to the YAML parameter spec file")
	fs.StringVar(&flags.name, "name", "", "name of the declared parameter to validate")
	fs.Var(&flags.values, "value", "raw value; repeat for array parameters, omit to test an absent value")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: paramtools check -specs <file> -name <parameter> [-value <raw>]...\n\n")
		_, _ = fmt.Fprintf(output, "Validates raw value(s) against a YAML-declared parameter spec and prints\n")
		_, _ = fmt.Fprintf(output, "the typed result as YAML. Exits non-zero with the failure message when\n")
		_, _ = fmt.Fprintf(output, "the value is rejected.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

func runCheck(args []string, out io.Writer) error {
	fs, flags := setupCheckFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if flags.specsPath == "" {
		return fmt.Errorf("missing required flag: -specs")
	}
	if flags.name == "" {
		return fmt.Errorf("missing required flag: -name")
	}

	set, err := specfile.Load(flags.specsPath)
	if err != nil {
		return err
	}

	spec := set.Get(flags.name)
	if spec == nil {
		return fmt.Errorf("parameter %q is not declared in %s", flags.name, flags.specsPath)
	}

	raw := params.AbsentInput()
	switch {
	case len(flags.values) == 0:
		// absent
	case spec.IsArray:
		raw = params.ArrayInput(flags.values)
	case len(flags.values) == 1:
		raw = params.SingleInput(flags.values[0])
	default:
		return fmt.Errorf("parameter %q is not an array; pass -value at most once", flags.name)
	}

	value, err := params.Validate(flags.name, raw, spec)
	if err != nil {
		return err
	}

	rendered, err := yaml.Marshal(map[string]any{flags.name: renderValue(value)})
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}
	_, err = out.Write(rendered)
	return err
}

// renderValue converts engine output to YAML-friendly forms: decimals keep
// their exact text representation and dates render as RFC 3339.
func renderValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = renderValue(e)
		}
		return out
	default:
		return v
	}
}

func printUsage() {
	fmt.Println("paramtools - declarative request parameter validation")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  paramtools <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check      Validate raw value(s) against a YAML-declared parameter spec")
	fmt.Println("  version    Print the paramtools version")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Run 'paramtools <command> -h' for command-specific flags.")
}
