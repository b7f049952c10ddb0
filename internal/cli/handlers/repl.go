// Package handlers implements the interactive screens of the worklog REPL.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/prompt"
	"github.com/xolan/worklog/internal/service"
)

// MenuAction is one line of a menu: the key the user types, the text shown
// next to it and the handler it runs.
type MenuAction struct {
	Key   string
	Label string
	Run   func(deps *cli.Deps, p *prompt.Prompter) error
}

// MainMenu lists the top-level actions.
var MainMenu = []MenuAction{
	{Key: "1", Label: "Add entry", Run: AddEntry},
	{Key: "2", Label: "View entries", Run: ViewEntries},
}

// ViewMenu returns one action per retrieval strategy, numbered from 1.
func ViewMenu() []MenuAction {
	actions := make([]MenuAction, 0, len(service.Strategies))
	for i, s := range service.Strategies {
		s := s
		actions = append(actions, MenuAction{
			Key:   strconv.Itoa(i + 1),
			Label: s.Label(),
			Run: func(deps *cli.Deps, p *prompt.Prompter) error {
				return FindEntries(deps, p, s)
			},
		})
	}
	return actions
}

const (
	mainHeader = "Welcome to worklog.\nSelect one of the following options or press 'q' to quit."
	viewHeader = "View entries:\nSelect one of the following options or press 'q' to go back."
)

// Run drives the REPL on deps' streams until the user quits or input ends.
// Only store failures are returned.
func Run(deps *cli.Deps) error {
	p := prompt.New(deps.Stdin, deps.Stdout)
	err := runMenu(deps, p, func() string { return mainHeader + logSummary(deps) }, MainMenu)
	if errors.Is(err, io.EOF) {
		_, _ = fmt.Fprintln(deps.Stdout)
		return nil
	}
	return err
}

// ViewEntries runs the strategy menu.
func ViewEntries(deps *cli.Deps, p *prompt.Prompter) error {
	return runMenu(deps, p, func() string { return viewHeader }, ViewMenu())
}

// logSummary is the entry count line under the main header. It is left
// out when the store cannot be counted.
func logSummary(deps *cli.Deps) string {
	n, err := deps.Services.Entry.Count()
	if err != nil {
		deps.Logger.Debug("count failed", "error", err)
		return ""
	}
	return fmt.Sprintf("\n%d %s recorded.", n, cli.Pluralize("log", n))
}

// runMenu shows actions until the user types QuitKey. Unknown keys redraw
// the menu. prompt.ErrQuit from an action returns to this menu.
func runMenu(deps *cli.Deps, p *prompt.Prompter, header func() string, actions []MenuAction) error {
	st := cli.NewStyles(deps.Stdout)

	for {
		deps.ClearScreen()
		_, _ = fmt.Fprintln(deps.Stdout, st.Title.Render(header()))
		for _, a := range actions {
			_, _ = fmt.Fprintf(deps.Stdout, "%s %s\n", st.Key.Render(a.Key+")"), a.Label)
		}

		line, err := p.Line("Action: ")
		if err != nil {
			return err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == prompt.QuitKey {
			return nil
		}

		action, ok := findAction(actions, choice)
		if !ok {
			continue
		}

		deps.ClearScreen()
		if err := action.Run(deps, p); err != nil && !errors.Is(err, prompt.ErrQuit) {
			return err
		}
	}
}

func findAction(actions []MenuAction, key string) (MenuAction, bool) {
	for _, a := range actions {
		if a.Key == key {
			return a, true
		}
	}
	return MenuAction{}, false
}

// pause waits for ENTER. End of input is left for the next prompt to see.
func pause(p *prompt.Prompter) {
	_, _ = p.Line("Press ENTER to continue.")
}
