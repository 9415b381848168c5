package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a event.GameAction
}

func (b *Keybinding) matches(ev *tcell.EventKey) bool {
	if b.k != 0 {
		return ev.Key() == b.k
	}

	return ev.Key() == tcell.KeyRune && ev.Rune() == b.r
}

var keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'k', a: event.ActionRotate},
	{r: 'K', a: event.ActionRotate},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardDrop},
	{r: 'p', a: event.ActionPause},
	{r: 'P', a: event.ActionPause},
	{r: 'r', a: event.ActionReset},
	{r: 'R', a: event.ActionReset},
	{k: tcell.KeyEnter, a: event.ActionStart},
}

// ActionForKey maps a keypress to a game action given the current state.
// Before the first game and after game over only Enter does anything. While
// paused only P and R do anything. Enter starts a game but never restarts
// one in progress.
func ActionForKey(ev *tcell.EventKey, snap game.Snapshot) event.GameAction {
	action := event.ActionUnknown
	for _, bind := range keybindings {
		if bind.matches(ev) {
			action = bind.a
			break
		}
	}

	switch {
	case !snap.Started() || snap.GameOver:
		if action != event.ActionStart {
			return event.ActionUnknown
		}
	case snap.Paused:
		if action != event.ActionPause && action != event.ActionReset {
			return event.ActionUnknown
		}
	case action == event.ActionStart:
		return event.ActionUnknown
	}

	return action
}

// quitKey reports whether ev should close the client
func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}
