package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/prompt"
	"github.com/xolan/worklog/internal/storage"
)

const createHeader = "Create an entry:"

// AddEntry collects the four fields of a new entry one at a time, asking
// again until each is valid, and saves the entry.
func AddEntry(deps *cli.Deps, p *prompt.Prompter) error {
	fields := []struct {
		label    string
		validate func(string) error
	}{
		{"Enter employee name: ", entry.ValidateEmployee},
		{"Enter a task name: ", entry.ValidateTaskName},
		{"Enter number of minutes spent working on the task: ", entry.ValidateDuration},
		{"Notes for this task (ENTER if None): ", entry.ValidateNotes},
	}

	st := cli.NewStyles(deps.Stdout)
	values := make([]string, len(fields))
	for i, f := range fields {
		_, _ = fmt.Fprintln(deps.Stdout, st.Title.Render(createHeader))
		v, err := prompt.Ask(p, f.label, checked(f.validate))
		if err != nil {
			return err
		}
		values[i] = v
		deps.ClearScreen()
	}

	if _, err := deps.Services.Entry.Create(values[0], values[1], values[2], values[3]); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(deps.Stdout, st.Success.Render("Saved successfully!"))
	pause(p)
	return nil
}

// checked adapts a field validator to a prompt parser. The user sees the
// bare rule, not which field broke it.
func checked(validate func(string) error) func(string) (string, error) {
	return func(s string) (string, error) {
		if err := validate(s); err != nil {
			var verr *entry.ValidationError
			if errors.As(err, &verr) {
				return "", verr.Err
			}
			return "", err
		}
		return s, nil
	}
}

// DeleteEntry asks for confirmation and removes e. A declined confirmation
// and an entry that is already gone both leave the session running.
func DeleteEntry(deps *cli.Deps, p *prompt.Prompter, e entry.Entry) error {
	ok, err := p.Confirm("Are you sure? [yN] ")
	if err != nil || !ok {
		return err
	}

	st := cli.NewStyles(deps.Stdout)
	err = deps.Services.Entry.Delete(e)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		_, _ = fmt.Fprintln(deps.Stdout, st.Muted.Render("Entry already removed."))
	case err != nil:
		return err
	default:
		_, _ = fmt.Fprintln(deps.Stdout, st.Success.Render("Entry deleted!"))
	}
	pause(p)
	return nil
}
