package nav

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

var (
	adminSess = &model.Session{Token: "t", Username: "admin", Roles: []string{"ADMIN"}}
	userSess  = &model.Session{Token: "t", Username: "user", Roles: []string{"USER"}}
)

func TestAnonymousAccessLimitedToPublicPages(t *testing.T) {
	m := NewMachine(zerolog.Nop())

	if err := m.NavigateTo(1, model.PageLogin, nil); err != nil {
		t.Errorf("login page for anonymous: %v", err)
	}
	if err := m.NavigateTo(1, model.PageRegister, nil); err != nil {
		t.Errorf("register page for anonymous: %v", err)
	}
	if err := m.NavigateTo(1, model.PageUserDashboard, nil); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("user dashboard for anonymous: err = %v, want ErrUnauthenticated", err)
	}
	if err := m.NavigateTo(1, model.PageAdminDashboard, nil); err == nil {
		t.Error("admin dashboard for anonymous must fail")
	}
}

func TestAdminPagesRequireAdminRole(t *testing.T) {
	m := NewMachine(zerolog.Nop())

	for page := range model.AdminPages {
		if err := m.NavigateTo(1, page, userSess); !errors.Is(err, ErrForbidden) {
			t.Errorf("page %s for plain user: err = %v, want ErrForbidden", page, err)
		}
		if err := m.NavigateTo(1, page, adminSess); err != nil {
			t.Errorf("page %s for admin: %v", page, err)
		}
	}
}

func TestUnknownRolesFailClosed(t *testing.T) {
	m := NewMachine(zerolog.Nop())
	sess := &model.Session{Token: "t", Username: "x"}

	if err := m.NavigateTo(1, model.PageManageQuizzes, sess); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden for session without roles", err)
	}
	if err := m.NavigateTo(1, model.PageUserDashboard, sess); err != nil {
		t.Errorf("user dashboard for roleless session: %v", err)
	}
}

func TestDeniedNavigationKeepsCurrentPage(t *testing.T) {
	m := NewMachine(zerolog.Nop())
	if err := m.NavigateTo(1, model.PageUserDashboard, userSess); err != nil {
		t.Fatal(err)
	}
	if err := m.NavigateTo(1, model.PageManageQuizzes, userSess); err == nil {
		t.Fatal("expected forbidden")
	}
	if got := m.Page(1); got != model.PageUserDashboard {
		t.Errorf("Page = %q, want %q after denied transition", got, model.PageUserDashboard)
	}
}

func TestTransitionCancelsPreviousPageContext(t *testing.T) {
	m := NewMachine(zerolog.Nop())
	if err := m.NavigateTo(1, model.PageUserDashboard, userSess); err != nil {
		t.Fatal(err)
	}
	oldCtx := m.PageContext(1)

	if err := m.NavigateTo(1, model.PageQuiz, userSess); err != nil {
		t.Fatal(err)
	}

	select {
	case <-oldCtx.Done():
	default:
		t.Error("previous page context not cancelled on transition")
	}
	select {
	case <-m.PageContext(1).Done():
		t.Error("new page context already cancelled")
	default:
	}
}

func TestTransitionClearsSelectionAndForm(t *testing.T) {
	m := NewMachine(zerolog.Nop())
	if err := m.NavigateTo(1, model.PageManageQuestions, adminSess); err != nil {
		t.Fatal(err)
	}
	m.SelectQuestion(1, &model.Question{ID: 7})

	if err := m.NavigateTo(1, model.PageAdminDashboard, adminSess); err != nil {
		t.Fatal(err)
	}
	state := m.State(1)
	if state.SelectedQuestion != nil || state.Form != nil {
		t.Error("selection must not survive a page transition")
	}
}

func TestLogoutResetReachableFromAnyPage(t *testing.T) {
	m := NewMachine(zerolog.Nop())
	if err := m.NavigateTo(1, model.PageCreateQuiz, adminSess); err != nil {
		t.Fatal(err)
	}
	ctx := m.PageContext(1)

	m.Reset(1)
	if err := m.NavigateTo(1, model.PageLogin, nil); err != nil {
		t.Errorf("login after reset: %v", err)
	}
	select {
	case <-ctx.Done():
	default:
		t.Error("reset must cancel the page context")
	}
}

func TestStatesAreIsolatedPerChat(t *testing.T) {
	m := NewMachine(zerolog.Nop())
	if err := m.NavigateTo(1, model.PageUserDashboard, userSess); err != nil {
		t.Fatal(err)
	}
	if err := m.NavigateTo(2, model.PageAdminDashboard, adminSess); err != nil {
		t.Fatal(err)
	}

	if m.Page(1) != model.PageUserDashboard || m.Page(2) != model.PageAdminDashboard {
		t.Errorf("pages = %q, %q", m.Page(1), m.Page(2))
	}
}
