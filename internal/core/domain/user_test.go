package domain

import "testing"

func TestRole_Satisfies(t *testing.T) {
	cases := []struct {
		have Role
		need Role
		want bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleEditor, true},
		{RoleEditor, RoleEditor, true},
		{RoleEditor, RoleAdmin, false},
		{Role("viewer"), RoleEditor, false},
		{Role(""), RoleEditor, false},
		{Role(""), RoleAdmin, false},
	}

	for _, tc := range cases {
		if got := tc.have.Satisfies(tc.need); got != tc.want {
			t.Fatalf("Satisfies(%q, %q) = %v, want %v", tc.have, tc.need, got, tc.want)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleEditor.Valid() {
		t.Fatalf("expected admin and editor to be valid roles")
	}
	if Role("superuser").Valid() {
		t.Fatalf("unknown role must not be valid")
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		if !ValidCategory(c.ID) {
			t.Fatalf("catalogue entry %q not recognised", c.ID)
		}
	}
	if ValidCategory("weather") {
		t.Fatalf("unexpected category accepted")
	}
}
