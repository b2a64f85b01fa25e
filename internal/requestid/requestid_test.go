package requestid

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("New() returned invalid UUID %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("Version() = %d, want 7", parsed.Version())
	}
	if New() == id {
		t.Error("expected distinct IDs")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(New()) {
		t.Error("generated ID should be valid")
	}
	if IsValid("not-a-uuid") {
		t.Error("garbage should be invalid")
	}
}

func TestEnsure(t *testing.T) {
	ctx, id := Ensure(context.Background())
	if id == "" || FromContext(ctx) != id {
		t.Fatalf("Ensure() did not attach id: %q", id)
	}

	ctx2, id2 := Ensure(ctx)
	if id2 != id || ctx2 != ctx {
		t.Errorf("Ensure() replaced existing id %q with %q", id, id2)
	}

	if FromContext(context.Background()) != "" {
		t.Error("empty context should carry no id")
	}
}
