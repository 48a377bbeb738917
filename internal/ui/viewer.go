package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"goldrun/internal/domain"
)

// FailureViewer displays failed cases of the last run in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View shows the failed outcomes. Passed outcomes are ignored; callers
// only open the viewer when at least one outcome failed.
func (fv *FailureViewer) View(outcomes []domain.RunOutcome) error {
	failures := FailedOutcomes(outcomes)

	// Reviewed marks only live for this session
	reviewed := make(map[int]bool)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	listItemText := func(index int) string {
		name := tview.Escape(failures[index].CaseName)
		if reviewed[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	for i := range failures {
		list.AddItem(listItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		remaining := 0
		for i := range failures {
			if !reviewed[i] {
				remaining++
			}
		}
		headerView.SetText(fmt.Sprintf(" Failed cases (%d total, %d not reviewed) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, q quit ", len(failures), remaining))
	}

	statusView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	expectedView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	expectedView.SetBorder(true).SetTitle(" expected ")

	actualView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	actualView.SetBorder(true).SetTitle(" actual ")

	outputs := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(expectedView, 0, 1, false).
		AddItem(actualView, 0, 1, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statusView, 3, 0, false).
		AddItem(outputs, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 3, false)

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(failures) {
			return
		}
		outcome := failures[index]
		statusView.SetText(formatOutcomeStatus(outcome))
		expectedView.SetText(formatExpected(outcome)).ScrollToBeginning()
		actualView.SetText(formatOutput(outcome.Actual)).ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyRight, tcell.KeyEnter:
			app.SetFocus(actualView)
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.Stop()
				return nil
			case 'r', 'R':
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failures) {
					reviewed[index] = !reviewed[index]
					list.SetItemText(index, listItemText(index), "")
					updateHeader()
				}
				return nil
			}
		}
		return event
	})

	actualView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyTab:
			app.SetFocus(expectedView)
			return nil
		}
		return event
	})

	expectedView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyTab:
			app.SetFocus(actualView)
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// FailedOutcomes returns the outcomes that did not pass, in order
func FailedOutcomes(outcomes []domain.RunOutcome) []domain.RunOutcome {
	var failed []domain.RunOutcome
	for _, outcome := range outcomes {
		if !outcome.Passed {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// formatOutcomeStatus formats the status header for a failed case
func formatOutcomeStatus(outcome domain.RunOutcome) string {
	name := tview.Escape(outcome.CaseName)
	if !outcome.HasExpected {
		return fmt.Sprintf("[red]✗ %s[white]\n[yellow]no expected snapshot recorded[white]\n", name)
	}
	line := FirstDifferentLine(outcome.Expected, outcome.Actual)
	return fmt.Sprintf("[red]✗ %s[white]\n[cyan]first difference at line %d[white]\n", name, line)
}

func formatExpected(outcome domain.RunOutcome) string {
	if !outcome.HasExpected {
		return "[gray](missing)[white]"
	}
	return formatOutput(outcome.Expected)
}

// formatOutput escapes output for tview and makes empty or unterminated
// output visible
func formatOutput(output string) string {
	if output == "" {
		return "[gray](empty)[white]"
	}
	text := tview.Escape(output)
	if !strings.HasSuffix(output, "\n") {
		text += "[gray]⏎ (no trailing newline)[white]"
	}
	return text
}

// FirstDifferentLine returns the 1-based number of the first line where
// expected and actual differ, or 0 when they are equal
func FirstDifferentLine(expected, actual string) int {
	if expected == actual {
		return 0
	}
	expectedLines := strings.SplitAfter(expected, "\n")
	actualLines := strings.SplitAfter(actual, "\n")
	for i := 0; i < len(expectedLines) && i < len(actualLines); i++ {
		if expectedLines[i] != actualLines[i] {
			return i + 1
		}
	}
	if len(expectedLines) < len(actualLines) {
		return len(expectedLines) + 1
	}
	return len(actualLines) + 1
}
