package gui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const HelpText = "←/→ move  ↑ rotate  ↓ drop  Space hard drop  P pause  R restart  Q quit"

const (
	pageGame     = "game"
	pageGameOver = "gameover"
)

// GUI renders a game with tview and feeds keypresses back to it
type GUI struct {
	App *tview.Application

	game  *game.Game
	theme Theme

	pages  *tview.Pages
	board  *tview.Box
	recent *tview.TextView
	modal  *tview.Modal

	draw   chan event.DrawObject
	logger chan string

	gameOverVisible bool
}

// NewGUI builds the interface for g. draw and logger must be the channels
// g was created with.
func NewGUI(g *game.Game, theme Theme, draw chan event.DrawObject, logger chan string) *GUI {
	gui := &GUI{
		App:    tview.NewApplication(),
		game:   g,
		theme:  theme,
		draw:   draw,
		logger: logger,
	}

	gui.board = tview.NewBox()
	gui.board.SetDrawFunc(func(screen tcell.Screen, x, y, w, h int) (int, int, int, int) {
		Render(screen, x, y, gui.game.Snapshot(), gui.theme)
		return x, y, w, h
	})

	help := tview.NewTextView().
		SetText(HelpText).
		SetTextColor(theme.Label)

	gui.recent = tview.NewTextView().
		SetScrollable(true).
		SetWrap(true).
		SetWordWrap(true).
		SetTextColor(theme.Msg)

	renderW, renderH := RenderSize(mino.StandardWidth, mino.StandardHeight)
	layout := tview.NewGrid().
		SetRows(1, renderH, 1, -1).
		SetColumns(1, renderW, -1).
		AddItem(tview.NewBox(), 0, 0, 4, 1, 0, 0, false).
		AddItem(gui.board, 1, 1, 1, 1, 0, 0, true).
		AddItem(help, 2, 1, 1, 2, 0, 0, false).
		AddItem(gui.recent, 3, 1, 1, 2, 0, 0, false)

	gui.modal = tview.NewModal().
		AddButtons([]string{"New Game", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			gui.hideGameOver()

			switch buttonLabel {
			case "New Game":
				gui.game.ProcessAction(event.ActionStart)
			case "Quit":
				gui.App.Stop()
			}
		})

	gui.pages = tview.NewPages().
		AddPage(pageGame, layout, true, true).
		AddPage(pageGameOver, gui.modal, true, false)

	gui.App.SetInputCapture(gui.handleKeypress)

	return gui
}

// Run shows the interface until the user quits or ctx is done
func (gui *GUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go gui.handleDraw(ctx)
	go gui.handleLogs(ctx)
	go gui.handleEvents(ctx)

	go func() {
		<-ctx.Done()
		gui.App.Stop()
	}()

	return gui.App.SetRoot(gui.pages, true).Run()
}

func (gui *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if gui.gameOverVisible {
		return ev
	}

	if quitKey(ev) {
		gui.App.Stop()
		return nil
	}

	if a := ActionForKey(ev, gui.game.Snapshot()); a != event.ActionUnknown {
		gui.game.ProcessAction(a)
	}

	return nil
}

func (gui *GUI) showGameOver(score int) {
	gui.modal.SetText(fmt.Sprintf("Game over!\n\nFinal score: %d", score))
	gui.modal.SetFocus(0)
	gui.pages.ShowPage(pageGameOver)
	gui.App.SetFocus(gui.modal)

	gui.gameOverVisible = true
}

func (gui *GUI) hideGameOver() {
	gui.pages.HidePage(pageGameOver)
	gui.App.SetFocus(gui.board)

	gui.gameOverVisible = false
}

func (gui *GUI) handleDraw(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-gui.draw:
			gui.App.Draw()
		}
	}
}

func (gui *GUI) handleLogs(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-gui.logger:
			log.Println(msg)

			line := fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), msg)
			gui.App.QueueUpdateDraw(func() {
				fmt.Fprintln(gui.recent, line)
				gui.recent.ScrollToEnd()
			})
		}
	}
}

func (gui *GUI) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-gui.game.Event:
			if over, ok := e.(*event.GameOverEvent); ok {
				gui.App.QueueUpdateDraw(func() {
					gui.showGameOver(over.Score)
				})
			}
		}
	}
}
