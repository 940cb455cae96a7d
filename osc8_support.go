package mdtty

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

// Environment variables whose mere presence identifies an OSC 8 capable
// terminal.
var osc8PresenceEnvs = []string{"DOMTERM", "WT_SESSION"}

// TERM_PROGRAM values known to render OSC 8 hyperlinks.
var osc8TermPrograms = map[string]bool{
	"iTerm.app": true,
	"WezTerm":   true,
	"vscode":    true,
}

// VTE-based terminals gained hyperlink support in 0.50.
const minVTEVersion = 5000

// DetectOSC8Support reports whether the current terminal likely understands
// OSC 8 hyperlinks. Setting OSC8=0 always opts out.
func DetectOSC8Support() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	for _, env := range osc8PresenceEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	if osc8TermPrograms[os.Getenv("TERM_PROGRAM")] {
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if n, err := strconv.Atoi(os.Getenv("VTE_VERSION")); err == nil && n >= minVTEVersion {
		return true
	}
	return false
}
