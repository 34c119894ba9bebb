package forms

import "testing"

func TestLoginFormFlow(t *testing.T) {
	f := New(KindLogin)

	if f.Done() {
		t.Fatal("new form must not be done")
	}
	if f.Current().Field != "username" {
		t.Errorf("first field = %q, want username", f.Current().Field)
	}
	f.Set("admin")
	if f.Current().Field != "password" {
		t.Errorf("second field = %q, want password", f.Current().Field)
	}
	f.Set("admin123")
	if !f.Done() {
		t.Fatal("form must be done after both steps")
	}
	if f.Values["username"] != "admin" || f.Values["password"] != "admin123" {
		t.Errorf("values = %v", f.Values)
	}
}

func TestRegisterOptionalEmailSkip(t *testing.T) {
	f := New(KindRegister)
	f.Set("alice")
	if !f.Current().Optional {
		t.Fatal("email step must be optional")
	}
	f.Skip()
	f.Set("secret")
	if !f.Done() {
		t.Fatal("form must be done")
	}
	if f.Values["email"] != "" {
		t.Errorf("skipped email = %q, want empty", f.Values["email"])
	}
}

func TestQuestionFormFieldOrder(t *testing.T) {
	want := []string{
		"question_title", "option1", "option2", "option3", "option4",
		"right_answer", "difficultylevel", "category",
	}
	f := New(KindAddQuestion)
	if len(f.Steps) != len(want) {
		t.Fatalf("len(Steps) = %d, want %d", len(f.Steps), len(want))
	}
	for i, field := range want {
		if f.Steps[i].Field != field {
			t.Errorf("Steps[%d].Field = %q, want %q", i, f.Steps[i].Field, field)
		}
	}
}

func TestCreateQuizStepModes(t *testing.T) {
	f := New(KindCreateQuiz)
	f.Set("Java Basics")
	if !f.Current().Choice {
		t.Error("category step must be a button choice")
	}
	f.Set("Java")
	if !f.Current().Number {
		t.Error("numQ step must require a number")
	}
	f.Set("10")
	if !f.Done() {
		t.Error("form must be done")
	}
}
