package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formclient/pkg/form"
)

func TestErrors_QueryOperations(t *testing.T) {
	errs := form.NewErrors()

	if errs.Any() || errs.Has("name") {
		t.Fatal("fresh store must be empty")
	}
	if got := errs.Get("name"); got != "" {
		t.Fatalf("Get on empty store = %q, want empty", got)
	}

	errs.Set(map[string][]string{
		"name":  {"Required", "Too short"},
		"email": {"Invalid"},
	})

	if !errs.Any() {
		t.Fatal("Any() should be true after Set")
	}
	if !errs.Has("name") || errs.Has("phone") {
		t.Fatalf("Has mismatch: name=%v phone=%v", errs.Has("name"), errs.Has("phone"))
	}
	if got := errs.Get("name"); got != "Required" {
		t.Fatalf("Get should return the primary message, got %q", got)
	}
	if diff := cmp.Diff([]string{"Required", "Too short"}, errs.GetAll("name")); diff != "" {
		t.Fatalf("GetAll mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors_SetReplacesWithoutMerging(t *testing.T) {
	errs := form.NewErrors()
	errs.Set(map[string][]string{"name": {"Required"}})
	errs.Set(map[string][]string{"email": {"Invalid"}})

	want := map[string][]string{"email": {"Invalid"}}
	if diff := cmp.Diff(want, errs.All()); diff != "" {
		t.Fatalf("Set must replace, not merge (-want +got):\n%s", diff)
	}
}

func TestErrors_ClearField(t *testing.T) {
	errs := form.NewErrors()
	errs.Set(map[string][]string{
		"name":  {"Required"},
		"email": {"Invalid"},
	})

	errs.Clear("email")
	errs.Clear("missing")

	want := map[string][]string{"name": {"Required"}}
	if diff := cmp.Diff(want, errs.All()); diff != "" {
		t.Fatalf("field clear mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors_ClearAllIsIdempotent(t *testing.T) {
	errs := form.NewErrors()
	errs.Set(map[string][]string{"name": {"Required"}})

	errs.Clear()
	if errs.Any() {
		t.Fatal("store should be empty after Clear()")
	}
	errs.Clear()
	if errs.Any() {
		t.Fatal("store should stay empty after a second Clear()")
	}
}

func TestErrors_AllReturnsACopy(t *testing.T) {
	errs := form.NewErrors()
	errs.Set(map[string][]string{"name": {"Required"}})

	all := errs.All()
	all["name"][0] = "mutated"
	all["extra"] = []string{"injected"}

	want := map[string][]string{"name": {"Required"}}
	if diff := cmp.Diff(want, errs.All()); diff != "" {
		t.Fatalf("All must not alias internal state (-want +got):\n%s", diff)
	}
}

func TestWithSanitizedMessages_StripsMarkup(t *testing.T) {
	f := form.New(map[string]any{"bio": ""}, form.WithSanitizedMessages())

	f.Errors().Set(map[string][]string{
		"bio": {`<script>alert("x")</script>Keep it short`},
	})

	if got := f.Errors().Get("bio"); got != "Keep it short" {
		t.Fatalf("sanitized message = %q, want %q", got, "Keep it short")
	}
}
