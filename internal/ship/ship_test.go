package ship

import (
	"testing"

	"orrery.space/internal/vec"
)

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry()
	if !r.Add(&Ship{Info: Info{ID: "a"}}) {
		t.Fatalf("Add rejected a fresh id")
	}
	if r.Get("a") == nil {
		t.Errorf("Get lost the ship")
	}
	if r.Get("b") != nil {
		t.Errorf("Get invented a ship")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryDuplicateNoop(t *testing.T) {
	r := NewRegistry()
	r.Add(&Ship{Info: Info{ID: "a"}, Pos: vec.Vec3{X: 1}})
	if r.Add(&Ship{Info: Info{ID: "a"}, Pos: vec.Vec3{X: 2}}) {
		t.Errorf("duplicate id was accepted")
	}
	if got := r.Get("a").Pos.X; got != 1 {
		t.Errorf("duplicate add overwrote the original ship, Pos.X = %v", got)
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		r.Add(&Ship{Info: Info{ID: id}})
	}
	r.Remove("b")
	r.Remove("missing") // no-op
	if r.Len() != 2 {
		t.Fatalf("Len = %d after remove, want 2", r.Len())
	}
	if r.Get("b") != nil {
		t.Errorf("removed ship still resolvable")
	}
	// Swap-delete must keep the survivors addressable.
	if r.Get("a") == nil || r.Get("c") == nil {
		t.Errorf("remove corrupted the index")
	}
	if !r.Add(&Ship{Info: Info{ID: "b"}}) {
		t.Errorf("id not reusable after removal")
	}
}

func TestRegistryIDsSorted(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"c", "a", "b"} {
		r.Add(&Ship{Info: Info{ID: id}})
	}
	ids := r.IDs()
	want := []string{"a", "b", "c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", ids, want)
		}
	}
}
