package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// crashScreen is finalized by HandleCrash before printing the trace
var crashScreen tcell.Screen

// RegisterCrashScreen sets the screen restored on panic
func RegisterCrashScreen(s tcell.Screen) {
	crashScreen = s
}

// HandleCrash restores the terminal, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if crashScreen != nil {
		crashScreen.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// guard recovers a panicking host goroutine through HandleCrash
func (h *Host) guard() {
	if r := recover(); r != nil {
		RegisterCrashScreen(h.screen)
		HandleCrash(r)
	}
}
