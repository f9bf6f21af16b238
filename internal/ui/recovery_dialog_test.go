package ui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/simplehac/simpletoolkit/internal/session"
)

func TestRecoveryDialog_CloseCountsAsCancel(t *testing.T) {
	test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	rd := NewRecoveryDialog(window, NewLocalization())

	var answers []session.RecoveryChoice
	d := rd.build("/readonly/file.dmg", "Cannot write", func(c session.RecoveryChoice) {
		answers = append(answers, c)
	})
	d.Show()
	d.Hide()

	if len(answers) != 1 || answers[0] != session.RecoveryCancel {
		t.Errorf("Expected a single cancel answer, got %v", answers)
	}
}

func TestRecoveryDialog_ContextDone(t *testing.T) {
	test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	rd := NewRecoveryDialog(window, NewLocalization())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	choice, err := rd.PromptRecovery(ctx, "/readonly/file.dmg", "Cannot write")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if choice != session.RecoveryCancel {
		t.Errorf("Expected cancel choice, got %s", choice)
	}
}

func TestToaster_Notify(t *testing.T) {
	test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	toaster := NewToaster(window, NewLocalization())
	toaster.Notify(session.NoticeInfo, "Download cancelled")
	toaster.Notify(session.NoticeSuccess, "Download completed: a.dmg")

	history := toaster.History()
	if len(history) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(history))
	}
	if history[1].Kind != session.NoticeSuccess || history[1].Message != "Download completed: a.dmg" {
		t.Errorf("Unexpected notification %+v", history[1])
	}
}
