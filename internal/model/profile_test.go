package model

import "testing"

func TestProfileRefNone(t *testing.T) {
	ref := NoProfile()

	if ref.Kind() != ProfileRefNone {
		t.Errorf("kind = %v, want ProfileRefNone", ref.Kind())
	}
	if got := ref.DisplayName(); got != UnknownDisplayName {
		t.Errorf("DisplayName = %q, want %q", got, UnknownDisplayName)
	}
	if got := ref.Email(); got != "" {
		t.Errorf("Email = %q, want empty", got)
	}
}

func TestProfileRefSingle(t *testing.T) {
	ref := SingleProfile(Profile{UserID: "u1", DisplayName: "Alice", Email: "alice@example.com"})

	if ref.Kind() != ProfileRefSingle {
		t.Errorf("kind = %v, want ProfileRefSingle", ref.Kind())
	}
	if got := ref.DisplayName(); got != "Alice" {
		t.Errorf("DisplayName = %q, want %q", got, "Alice")
	}
	if got := ref.Email(); got != "alice@example.com" {
		t.Errorf("Email = %q, want %q", got, "alice@example.com")
	}
}

func TestProfileRefSingleEmptyNameFallsBack(t *testing.T) {
	ref := SingleProfile(Profile{UserID: "u1"})

	if got := ref.DisplayName(); got != UnknownDisplayName {
		t.Errorf("DisplayName = %q, want %q", got, UnknownDisplayName)
	}
}

func TestProfileRefListUsesFirstElement(t *testing.T) {
	ref := ProfileList([]Profile{
		{UserID: "u1", DisplayName: "Alice", Email: "alice@example.com"},
		{UserID: "u1", DisplayName: "Stale", Email: "old@example.com"},
	})

	if ref.Kind() != ProfileRefList {
		t.Errorf("kind = %v, want ProfileRefList", ref.Kind())
	}
	if got := ref.DisplayName(); got != "Alice" {
		t.Errorf("DisplayName = %q, want first element %q", got, "Alice")
	}
	if got := ref.Email(); got != "alice@example.com" {
		t.Errorf("Email = %q, want first element %q", got, "alice@example.com")
	}
}

func TestProfileRefEmptyListCollapsesToNone(t *testing.T) {
	ref := ProfileList(nil)

	if ref.Kind() != ProfileRefNone {
		t.Errorf("kind = %v, want ProfileRefNone", ref.Kind())
	}
	if got := ref.DisplayName(); got != UnknownDisplayName {
		t.Errorf("DisplayName = %q, want %q", got, UnknownDisplayName)
	}
}
