package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtower/internal/equation"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate an equation the way the game reads tiles",
	Long: `Evaluate an equation scanning left to right, where x and / combine with
the term just before them: 3+2x2 is 7 and 14-3/2 is 12.5.

'*' is accepted for multiplication and whitespace is ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := normalizeExpr(strings.Join(args, ""))
		fmt.Fprintln(cmd.OutOrStdout(), formatValue(equation.Evaluate(expr)))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <expr>",
	Short: "Check whether an equation is a well-formed tile equation",
	Long: `Check whether an equation is a well-formed tile equation: single digits
alternating with the operators + - x /, starting and ending on a digit.
Only whitespace is ignored, so '*' is rejected. Exits 1 when it is not.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := stripSpace(strings.Join(args, ""))
		if !equation.Validate(expr) {
			fmt.Fprintln(cmd.OutOrStdout(), "invalid")
			return errInvalid
		}
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}

// errInvalid makes validate exit non-zero without printing an error.
var errInvalid = &exitError{code: 1}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return "exit status " + strconv.Itoa(e.code)
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return 1
}

// Silent reports whether err should exit without a message.
func Silent(err error) bool {
	_, ok := err.(*exitError)
	return ok
}

// normalizeExpr strips whitespace and maps the typographic and '*' forms
// to canonical glyphs.
func normalizeExpr(s string) string {
	r := strings.NewReplacer(" ", "", "\t", "", "*", "x", "×", "x", "÷", "/", "−", "-")
	return r.Replace(s)
}

// stripSpace removes whitespace and leaves every other glyph untouched.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
