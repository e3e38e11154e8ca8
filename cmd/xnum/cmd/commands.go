package cmd

import (
	"fmt"
	"math/big"
	"runtime"
	"strings"

	"github.com/govalues/xnum"
	"github.com/govalues/xnum/internal/calc"
	"github.com/govalues/xnum/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "development"

func newEvalCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate a prefix expression",
		Long: `Evaluate an expression in prefix (Polish) notation.

Binary operators: + - * / ^ approx
Unary operators:  neg inv abs

Example: xnum eval '* 10 + 1.23 0.[3]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			x, err := calc.Evaluate(expr)
			if err != nil {
				return err
			}
			o.logger.Debug("evaluated", "expr", expr, "value", x)
			o.print(cmd, x)
			return nil
		},
	}
}

func newParseCmd(o *options) *cobra.Command {
	var as string
	c := &cobra.Command{
		Use:   "parse VALUE...",
		Short: "Parse values and print them in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				out, err := parseAs(as, s)
				if err != nil {
					return err
				}
				o.logger.Debug("parsed", "input", s, "as", as, "value", out)
				if x, ok := out.(xnum.Rational); ok {
					o.print(cmd, x)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	c.Flags().StringVar(&as, "as", "rational", "target type: natural, integer, rational or fraction")
	return c
}

// parseAs parses s with the parser of the named type.
func parseAs(as, s string) (fmt.Stringer, error) {
	switch as {
	case "natural":
		return xnum.ParseNatural(s)
	case "integer":
		return xnum.ParseInteger(s)
	case "rational":
		return xnum.ParseRational(s)
	case "fraction":
		return xnum.ParseFraction(s)
	}
	return nil, fmt.Errorf("unknown type %q, expected natural, integer, rational or fraction", as)
}

func newApproxCmd(o *options) *cobra.Command {
	var maxDen string
	c := &cobra.Command{
		Use:   "approx VALUE...",
		Short: "Find the closest fraction with a bounded denominator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound := big.NewInt(o.cfg.Approx.MaxDen)
			if cmd.Flags().Changed("max-den") {
				n, err := xnum.ParseNatural(maxDen)
				if err != nil {
					return err
				}
				if bound, err = n.Big(); err != nil {
					return err
				}
			}
			xs, err := o.parseAll(args)
			if err != nil {
				return err
			}
			for _, x := range xs {
				a, err := x.Approx(bound)
				if err != nil {
					return err
				}
				o.logger.Debug("approximated", "value", x, "max_den", bound, "result", a)
				o.print(cmd, a)
			}
			return nil
		},
	}
	c.Flags().StringVar(&maxDen, "max-den", "", fmt.Sprintf("largest allowed denominator (default from config, else %v)", config.DefaultMaxDen))
	return c
}

func newSumCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sum VALUE...",
		Short: "Add values exactly",
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := o.parseAll(args)
			if err != nil {
				return err
			}
			o.print(cmd, xnum.SumRationals(xs...))
			return nil
		},
	}
}

func newProductCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "product VALUE...",
		Short: "Multiply values exactly",
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := o.parseAll(args)
			if err != nil {
				return err
			}
			o.print(cmd, xnum.ProductRationals(xs...))
			return nil
		},
	}
}

func newLayoutCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "layout VALUE...",
		Short: "Print the sign, numerator and denominator parts of values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := o.parseAll(args)
			if err != nil {
				return err
			}
			for _, x := range xs {
				l := x.Layout(o.flags)
				fmt.Fprintf(cmd.OutOrStdout(), "sign=%q num=%q denom=%q\n", l.Sign, l.Num, l.Denom)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xnum %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
