package tool

import "testing"

// TestRegistryOverrideOnInsert checks that inserting A, then B, then a
// second A overrides the first by name without growing the count past 2.
func TestRegistryOverrideOnInsert(t *testing.T) {
	r := NewRegistry()
	r.Add(Entry{Name: "A", Path: "/bin/a-v1"})
	r.Add(Entry{Name: "B", Path: "/bin/b"})
	r.Add(Entry{Name: "A", Path: "/bin/a-v2"})

	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}
	got, ok := r.Lookup("A")
	if !ok {
		t.Fatal("Lookup(A) not found")
	}
	if got.Path != "/bin/a-v2" {
		t.Errorf("Lookup(A).Path = %q, want the second insert's path %q", got.Path, "/bin/a-v2")
	}
}

func TestRegistryLookupMiss(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("missing")
	if ok {
		t.Error("Lookup on empty registry should miss")
	}
}

func TestRegistryClearPreservesUsability(t *testing.T) {
	r := NewRegistry()
	r.Add(Entry{Name: "A"})
	r.Clear()
	if r.Count() != 0 {
		t.Fatalf("Count() after Clear = %d, want 0", r.Count())
	}
	r.Add(Entry{Name: "B"})
	if r.Count() != 1 {
		t.Errorf("Count() after Clear+Add = %d, want 1", r.Count())
	}
}

func TestRegistrySortOrdersByName(t *testing.T) {
	r := NewRegistry()
	r.Add(Entry{Name: "zebra"})
	r.Add(Entry{Name: "apple"})
	r.Add(Entry{Name: "mango"})
	r.Sort()

	all := r.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Fatalf("All() not sorted: %v", all)
		}
	}
}
