// Demo application showing the view tree, focus navigation and
// scrolling. Run it in a real terminal; q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/termview"
	"github.com/lixenwraith/termview/backend/tcellb"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/style"
	"github.com/lixenwraith/termview/views"
)

var themeFlag = flag.String("theme", "", "Path to a TOML theme file")

func main() {
	flag.Parse()

	b, err := tcellb.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}

	app := termview.New(b)
	if *themeFlag != "" {
		theme, err := style.LoadTheme(*themeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load theme: %v\n", err)
			os.Exit(1)
		}
		app.SetTheme(theme)
	}

	app.SetRoot(buildUI(app))
	app.AddGlobalCallback(event.On(event.Char('q')), app.Quit)

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "termview-demo: %v\n", err)
		os.Exit(1)
	}
}

func buildUI(app *termview.App) *views.Linear {
	var lines []string
	for i := 1; i <= 100; i++ {
		lines = append(lines, fmt.Sprintf("line %3d of the scrollable body", i))
	}
	body := views.NewScroll(views.NewText(strings.Join(lines, "\n")))

	status := views.NewNamed("status", views.NewText("Tab cycles focus, arrows navigate, q quits"))

	buttons := views.Horizontal().
		Add(views.NewButton("Top", func() {
			body.Core().ScrollToTop()
		})).
		Add(views.NewButton("Bottom", func() {
			body.Core().ScrollToBottom()
		})).
		Add(views.NewButton("Quit", app.Quit))

	return views.Vertical().
		Add(status).
		Add(body).
		Add(buttons)
}
