package errhandler

import (
	"errors"
	"os"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// HandleError prints err to the user. A ctrl-c during a prompt is a
// cancel, not a failure.
func HandleError(err error) {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(capitalize(err.Error()))
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
