// Package browser is a static results browser for a completed mining run:
// a scrollable, focus-navigable table of (pattern, support) pairs with a
// summary header and 'q' to quit. Drastically trimmed from the teacher's
// tui.App — that dashboard drives a live, multi-trie analysis with
// background caches and an animated progress page; a finished mining run
// has none of that, so this keeps only the teacher's page/input-capture
// skeleton and the scrollable-panel idiom, pointed at a single static
// result set instead.
package browser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dnapatterns/patternminer/report"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App is the static results browser.
type App struct {
	app       *tview.Application
	table     *tview.TextView
	statusBar *tview.TextView

	result    *report.JSONResult
	lengths   []int
	lengthIdx int
	byLength  map[int][]report.PatternResult
}

// NewApp builds a browser over a completed JSONResult.
func NewApp(result *report.JSONResult) *App {
	byLength := make(map[int][]report.PatternResult)
	for _, p := range result.Patterns {
		l := len(p.Pattern)
		byLength[l] = append(byLength[l], p)
	}
	var lengths []int
	for l, patterns := range byLength {
		sort.Slice(patterns, func(i, j int) bool { return patterns[i].Support > patterns[j].Support })
		byLength[l] = patterns
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	a := &App{
		app:      tview.NewApplication(),
		result:   result,
		lengths:  lengths,
		byLength: byLength,
	}
	a.setupUI()
	return a
}

func (a *App) setupUI() {
	a.table = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	a.table.SetBorder(true).SetTitle(" Patterns ").SetTitleAlign(tview.AlignLeft)

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.table, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q', 'Q':
			a.app.Stop()
			return nil
		}
		switch event.Key() {
		case tcell.KeyRight, tcell.KeyTab:
			a.nextLength()
			return nil
		case tcell.KeyLeft, tcell.KeyBacktab:
			a.prevLength()
			return nil
		case tcell.KeyDown:
			row, col := a.table.GetScrollOffset()
			a.table.ScrollTo(row+1, col)
			return nil
		case tcell.KeyUp:
			row, col := a.table.GetScrollOffset()
			if row > 0 {
				a.table.ScrollTo(row-1, col)
			}
			return nil
		}
		return event
	})

	a.app.SetRoot(main, true)
	a.render()
}

func (a *App) nextLength() {
	if len(a.lengths) == 0 {
		return
	}
	a.lengthIdx = (a.lengthIdx + 1) % len(a.lengths)
	a.render()
}

func (a *App) prevLength() {
	if len(a.lengths) == 0 {
		return
	}
	a.lengthIdx = (a.lengthIdx - 1 + len(a.lengths)) % len(a.lengths)
	a.render()
}

// render redraws the table and status bar for the currently selected
// pattern length.
func (a *App) render() {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("[white::b]%s run, L=[%d,%d], %d pass(es)[white::-]\n\n",
		a.result.Metadata.Method, a.result.General.LMin, a.result.General.LMax, a.result.General.PassCount))

	if len(a.lengths) == 0 {
		body.WriteString("[dim]No frequent patterns found[white]")
		a.table.SetText(body.String())
		a.statusBar.SetText("[yellow]q[white]: quit")
		return
	}

	length := a.lengths[a.lengthIdx]
	body.WriteString(fmt.Sprintf("[yellow]Length %d[white] (%d/%d)\n\n", length, a.lengthIdx+1, len(a.lengths)))
	for _, p := range a.byLength[length] {
		body.WriteString(fmt.Sprintf("  [cyan]%s[white]  support=%d\n", p.Pattern, p.Support))
	}

	a.table.SetText(body.String())
	a.statusBar.SetText("[green]←/→[white]: change length  [green]↑/↓[white]: scroll  [yellow]q[white]: quit")
}

// Run starts the browser's event loop.
func (a *App) Run() error {
	return a.app.Run()
}
