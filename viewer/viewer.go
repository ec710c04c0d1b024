// Package viewer provides a static, post-assembly terminal browser: a
// listing pane, a symbol table pane, and a hex-dump pane over one already
// assembled program. There is no running CPU to poll, so the view never
// refreshes on its own; it is built once from an assembler.Result and the
// user navigates between panels and scrolls them.
package viewer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/sj99642/miniasm/assembler"
	"github.com/sj99642/miniasm/tools"
)

// Viewer is the text user interface for browsing an assembled program.
type Viewer struct {
	App   *tview.Application
	Pages *tview.Pages

	MainLayout *tview.Flex

	ListingView *tview.TextView
	SymbolsView *tview.TextView
	HexView     *tview.TextView
	StatusView  *tview.TextView

	Result   *assembler.Result
	Filename string
}

// New builds a Viewer over an already-assembled program. It panics if
// result is nil; callers only reach the viewer after a successful
// assembler.Assemble call.
func New(result *assembler.Result, filename string) *Viewer {
	v := &Viewer{
		App:      tview.NewApplication(),
		Result:   result,
		Filename: filename,
	}

	v.initializeViews()
	v.buildLayout()
	v.setupKeyBindings()
	v.populate()

	return v
}

func (v *Viewer) initializeViews() {
	v.ListingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	v.ListingView.SetBorder(true).SetTitle(" Listing ")

	v.SymbolsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	v.SymbolsView.SetBorder(true).SetTitle(" Symbols ")

	v.HexView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	v.HexView.SetBorder(true).SetTitle(" Hex Dump ")

	v.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	v.StatusView.SetBorder(true).SetTitle(" Status ")
}

func (v *Viewer) buildLayout() {
	leftPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.ListingView, 0, 3, false).
		AddItem(v.SymbolsView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(leftPanel, 0, 2, false).
		AddItem(v.HexView, 0, 1, false)

	v.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(v.StatusView, 3, 0, false)

	v.Pages = tview.NewPages().
		AddPage("main", v.MainLayout, true, true)
}

func (v *Viewer) setupKeyBindings() {
	focusables := []tview.Primitive{v.ListingView, v.SymbolsView, v.HexView}
	focusIdx := 0

	v.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			focusIdx = (focusIdx + 1) % len(focusables)
			v.App.SetFocus(focusables[focusIdx])
			return nil
		case tcell.KeyCtrlC, tcell.KeyEscape:
			v.App.Stop()
			return nil
		}
		if event.Rune() == 'q' {
			v.App.Stop()
			return nil
		}
		return event
	})
}

// populate renders the three panes once from the assembled result.
func (v *Viewer) populate() {
	listing := tools.FormatListing(v.Result.Instructions, v.Result.Symbols)
	v.ListingView.SetText(listing)

	v.SymbolsView.SetText(v.formatSymbols())
	v.HexView.SetText(tools.HexDump(v.Result.Bytes, 16, false))

	v.StatusView.SetText(fmt.Sprintf(
		"[yellow]%s[white]  %d bytes  %d symbols  (tab: switch pane, q: quit)",
		v.Filename, len(v.Result.Bytes), len(v.Result.Symbols)))
}

func (v *Viewer) formatSymbols() string {
	names := make([]string, 0, len(v.Result.Symbols))
	for name := range v.Result.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("0x%08X  %s", v.Result.Symbols[name], name))
	}
	return strings.Join(lines, "\n")
}

// Run starts the viewer application, blocking until the user quits.
func (v *Viewer) Run() error {
	return v.App.SetRoot(v.Pages, true).SetFocus(v.ListingView).Run()
}

// Stop stops the viewer application.
func (v *Viewer) Stop() {
	v.App.Stop()
}
