package registry

import (
	"strings"
	"testing"
)

type stubFrontend struct{ id string }

func (s stubFrontend) ID() string        { return s.id }
func (s stubFrontend) Title() string     { return strings.ToUpper(s.id) }
func (s stubFrontend) Run(Session) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return stubFrontend{id: "stub-b"} })
	Register("stub-a", func() Frontend { return stubFrontend{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false, want true")
	}

	f, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.ID() != "stub-b" {
		t.Errorf("ID() = %q, want %q", f.ID(), "stub-b")
	}

	list := List()
	var ids []string
	for _, info := range list {
		if strings.HasPrefix(info.ID, "stub-") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if got := strings.Join(ids, ","); got != "stub-a=STUB-A,stub-b=STUB-B" {
		t.Errorf("List() = %s, want sorted stubs with titles", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Fatal("Create(nope) error = nil, want error")
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true, want false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return stubFrontend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub-dup", func() Frontend { return stubFrontend{id: "stub-dup"} })
}
