// Command antigravity-theme shows or changes the stored theme preference.
// Running instances watch the file and recolor live.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/lixenwraith/antigravity/theme"
)

const usage = `usage: antigravity-theme [-file path] [show|toggle|set light|set dark|path]`

func main() {
	file := flag.String("file", "", "Theme preference file (default: user config dir)")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	path := *file
	if path == "" {
		var err error
		if path, err = theme.DefaultPath(); err != nil {
			fail(err)
		}
	}

	if err := run(os.Stdout, theme.NewStore(path), os.Getenv, flag.Args()); err != nil {
		fail(err)
	}
}

// run executes one subcommand; getenv feeds system theme detection
func run(w io.Writer, store *theme.Store, getenv func(string) string, args []string) error {
	cmd := "show"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "show":
		t, ok, err := store.Load()
		if err != nil {
			return err
		}
		if !ok {
			t = theme.Detect(getenv)
			fmt.Fprintf(w, "%s (system, not saved)\n", label(t))
		} else {
			fmt.Fprintf(w, "%s\n", label(t))
		}
		swatches(w, t)

	case "toggle":
		// Start from what is on screen: the saved theme, else the system one
		t, ok, err := store.Load()
		if err != nil {
			return err
		}
		if !ok {
			t = theme.Detect(getenv)
		}
		t = t.Toggle()
		if err := store.Save(t); err != nil {
			return err
		}
		fmt.Fprintf(w, "switched to %s\n", label(t))

	case "set":
		if len(args) < 2 {
			return fmt.Errorf("%s", usage)
		}
		t, err := theme.Parse(args[1])
		if err != nil {
			return err
		}
		if err := store.Save(t); err != nil {
			return err
		}
		fmt.Fprintf(w, "set to %s\n", label(t))

	case "path":
		fmt.Fprintln(w, store.Path())

	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
	return nil
}

func label(t theme.Theme) string {
	if t == theme.Dark {
		return color.New(color.FgHiBlue, color.Bold).Sprint(t.String())
	}
	return color.New(color.FgHiYellow, color.Bold).Sprint(t.String())
}

// swatches prints the particle palette as colored blocks
func swatches(w io.Writer, t theme.Theme) {
	bg := t.Background()
	for _, c := range t.Palette() {
		rgb := c.Over(bg)
		fmt.Fprint(w, color.RGB(int(rgb.R), int(rgb.G), int(rgb.B)).Sprint("██ "))
	}
	fmt.Fprintln(w)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("antigravity-theme: %v", err))
	os.Exit(1)
}
