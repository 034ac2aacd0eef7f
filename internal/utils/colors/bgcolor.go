package colors

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SetupBackgroundColorTypeFromEnv initializes the background color setting based on
// SGH_HAS_LIGHT_BG environment variable.
//
// lipgloss guesses the background from COLORFGBG, which not every terminal
// sets, so this lets the user force it.
func SetupBackgroundColorTypeFromEnv() {
	envvar := strings.ToLower(os.Getenv("SGH_HAS_LIGHT_BG"))
	switch envvar {
	case "true", "1", "yes", "y", "on":
		lipgloss.SetHasDarkBackground(false)
	case "false", "0", "no", "n", "off":
		lipgloss.SetHasDarkBackground(true)
	default:
		// Otherwise, let lipgloss determine the background color based on the terminal.
	}
}
