// Package cmd implements the xnum command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/govalues/xnum"
	"github.com/govalues/xnum/internal/config"
	"github.com/spf13/cobra"
)

// options holds the state shared by all subcommands of one invocation.
type options struct {
	cfgFile string
	verbose bool

	plusSign    bool
	signedZero  bool
	signedInf   bool
	denomOne    bool
	hyphenMinus bool

	cfg    *config.Config
	flags  xnum.LayoutFlags
	logger *slog.Logger
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the root command with args.
// Negative operands such as "-3/4" are accepted without a "--" separator.
func ExecuteArgs(args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(protectOperands(args))
	return root.Execute()
}

// protectOperands rewrites the leading '-' of negative numbers before "--"
// to the minus sign U+2212, which the flag parser leaves alone and the
// number parsers read as '-'.
func protectOperands(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, a := range out {
		if a == "--" {
			break
		}
		if isNegativeOperand(a) {
			out[i] = "−" + a[1:]
		}
	}
	return out
}

func isNegativeOperand(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	rest := a[1:]
	switch {
	case strings.ContainsRune("0123456789.[/", rune(rest[0])):
		return true
	case strings.EqualFold(rest, "inf"), strings.EqualFold(rest, "nan"):
		return true
	}
	return false
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "xnum",
		Short: "Exact arithmetic on extended naturals, integers and rationals",
		Long: `xnum parses, evaluates and prints exact numbers.

Values may be written as fractions ("-3/4"), decimals ("1.25e-3"),
repeating decimals ("0.1[6]") or special values ("inf", "-0", "nan").
Negative values can be given directly: xnum sum -3/4 1/4`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output to stderr")
	pf.BoolVar(&o.plusSign, "plus-sign", false, "print '+' before positive values")
	pf.BoolVar(&o.signedZero, "signed-zero", false, "print the sign of zeros")
	pf.BoolVar(&o.signedInf, "signed-inf", false, "print '+' before positive infinity")
	pf.BoolVar(&o.denomOne, "denom-one", false, "print the denominator of integers")
	pf.BoolVar(&o.hyphenMinus, "hyphen-minus", false, "print '-' instead of U+2212 (default when not a terminal)")

	root.AddCommand(
		newEvalCmd(o),
		newParseCmd(o),
		newApproxCmd(o),
		newSumCmd(o),
		newProductCmd(o),
		newLayoutCmd(o),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and lets explicit flags override it.
func (o *options) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	o.cfg = config.Default()
	if o.cfgFile != "" {
		cfg, err := config.Load(o.cfgFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
		o.logger.Debug("config loaded", "path", o.cfgFile)
	}

	fs := cmd.Flags()
	override := func(name string, dst *bool, val bool) {
		if fs.Changed(name) {
			*dst = val
		}
	}
	override("plus-sign", &o.cfg.Layout.PlusSign, o.plusSign)
	override("signed-zero", &o.cfg.Layout.SignedZero, o.signedZero)
	override("signed-inf", &o.cfg.Layout.SignedInf, o.signedInf)
	override("denom-one", &o.cfg.Layout.DenomOne, o.denomOne)
	if fs.Changed("hyphen-minus") {
		hyphen := o.hyphenMinus
		o.cfg.Layout.HyphenMinus = &hyphen
	}

	o.flags = o.cfg.Flags(outFile(cmd.OutOrStdout()))
	o.logger.Debug("layout", "flags", o.flags)
	return nil
}

// outFile returns w as a file, or nil if w is not one.
func outFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

// print writes x to the command output using the configured layout.
func (o *options) print(cmd *cobra.Command, x xnum.Rational) {
	fmt.Fprintln(cmd.OutOrStdout(), x.Layout(o.flags))
}

// parseAll parses every argument as a rational.
func (o *options) parseAll(args []string) ([]xnum.Rational, error) {
	xs := make([]xnum.Rational, 0, len(args))
	for _, s := range args {
		x, err := xnum.ParseRational(s)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("operand", "input", s, "value", x)
		xs = append(xs, x)
	}
	return xs, nil
}
