package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/prompt"
	"github.com/xolan/worklog/internal/service"
)

// FindEntries runs one retrieval strategy and pages through its results.
func FindEntries(deps *cli.Deps, p *prompt.Prompter, s service.Strategy) error {
	st := cli.NewStyles(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, st.Title.Render(s.Label()+":"))

	var (
		entries []entry.Entry
		err     error
	)
	if s.HasChoices() {
		_, _ = fmt.Fprintln(deps.Stdout, "Select a value from the list below or press 'q' to go back:")
		entries, err = deps.Services.Query.Select(s, p, func(choices []service.Choice) {
			for i, c := range choices {
				_, _ = fmt.Fprintln(deps.Stdout, cli.FormatChoice(i, c, st))
			}
		})
	} else {
		var term string
		term, err = p.Line("Enter a term to search database:\n> ")
		if err == nil {
			entries, err = deps.Services.Query.Search(term)
		}
	}

	switch {
	case errors.Is(err, prompt.ErrEmptyChoice):
		_, _ = fmt.Fprintln(deps.Stdout, st.Muted.Render("No entries to choose from."))
		pause(p)
		return nil
	case err != nil:
		return err
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, st.Muted.Render("No matching entries."))
		pause(p)
		return nil
	}

	return ShowEntries(deps, p, entries)
}

// ShowEntries shows entries one at a time. "n" moves on, "d" offers to
// delete the entry on screen and then moves on, "q" stops early.
func ShowEntries(deps *cli.Deps, p *prompt.Prompter, entries []entry.Entry) error {
	st := cli.NewStyles(deps.Stdout)
	loc := deps.Config.Location()

	for i, e := range entries {
		deps.ClearScreen()
		_, _ = fmt.Fprintln(deps.Stdout, st.Title.Render(
			fmt.Sprintf("Here are your selected logs (%d of %d):", i+1, len(entries))))
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprint(deps.Stdout, cli.FormatEntry(e, loc, st))
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintf(deps.Stdout, "%s next entry\n", st.Key.Render("n)"))
		_, _ = fmt.Fprintf(deps.Stdout, "%s delete entry\n", st.Key.Render("d)"))
		_, _ = fmt.Fprintf(deps.Stdout, "%s back\n", st.Key.Render("q)"))

		quit, err := entryAction(deps, p, e)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}

// entryAction reads display-loop commands until one is recognised.
func entryAction(deps *cli.Deps, p *prompt.Prompter, e entry.Entry) (bool, error) {
	for {
		line, err := p.Line("Action: ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "n":
			return false, nil
		case "d":
			return false, DeleteEntry(deps, p, e)
		case prompt.QuitKey:
			return true, nil
		}
	}
}
