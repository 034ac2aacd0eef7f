package colors

import "github.com/fatih/color"

// Printers for plain (non-TUI) output such as `sgh auth status` and
// non-interactive search results.
var (
	SuccessC   = color.New(color.FgGreen)
	FailureC   = color.New(color.FgRed)
	UserInputC = color.New(color.FgCyan)
)

var (
	Success   = SuccessC.Sprint
	Failure   = FailureC.Sprint
	UserInput = UserInputC.Sprint
)
