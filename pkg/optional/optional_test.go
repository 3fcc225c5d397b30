package optional

import "testing"

func TestZipAbsentInputs(t *testing.T) {
	tests := []struct {
		name string
		a    Option[string]
		b    Option[int]
	}{
		{"first absent", None[string](), Some(2)},
		{"second absent", Some("a"), None[int]()},
		{"both absent", None[string](), None[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			got := Zip(tt.a, tt.b, func(a string, b int) Option[bool] {
				calls++
				return Some(true)
			})
			if got.IsSome() {
				t.Error("Zip() = Some, want None")
			}
			if calls != 0 {
				t.Errorf("f called %d times, want 0", calls)
			}
		})
	}
}

func TestZipBothPresent(t *testing.T) {
	calls := 0
	var gotA string
	var gotB int
	got := Zip(Some("key"), Some(42), func(a string, b int) Option[string] {
		calls++
		gotA, gotB = a, b
		return Some("combined")
	})

	if calls != 1 {
		t.Errorf("f called %d times, want 1", calls)
	}
	if gotA != "key" || gotB != 42 {
		t.Errorf("f called with (%q, %d), want (%q, %d)", gotA, gotB, "key", 42)
	}
	if v, ok := got.Get(); !ok || v != "combined" {
		t.Errorf("Zip() = (%q, %v), want (%q, true)", v, ok, "combined")
	}
}

func TestZipFunctionReturnsNone(t *testing.T) {
	calls := 0
	got := Zip(Some(1), Some(2), func(a, b int) Option[int] {
		calls++
		return None[int]()
	})
	if got.IsSome() {
		t.Error("Zip() = Some, want None when f returns None")
	}
	if calls != 1 {
		t.Errorf("f called %d times, want 1", calls)
	}
}

func TestZeroValueIsNone(t *testing.T) {
	var o Option[string]
	if o.IsSome() {
		t.Error("zero Option should be None")
	}
	if got := o.OrElse("default"); got != "default" {
		t.Errorf("OrElse() = %q, want %q", got, "default")
	}
	if o.Ptr() != nil {
		t.Error("Ptr() of None should be nil")
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{"SET": "value", "EMPTY": ""}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	tests := []struct {
		key    string
		wantOK bool
	}{
		{"SET", true},
		{"EMPTY", false},
		{"UNSET", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := FromEnv(lookup, tt.key).IsSome(); got != tt.wantOK {
				t.Errorf("FromEnv(%q).IsSome() = %v, want %v", tt.key, got, tt.wantOK)
			}
		})
	}

	if FromEnv(nil, "SET").IsSome() {
		t.Error("FromEnv(nil lookup) should be None")
	}
}

func TestFromPtrAndMap(t *testing.T) {
	n := 3
	if v, ok := FromPtr(&n).Get(); !ok || v != 3 {
		t.Errorf("FromPtr(&3) = (%d, %v), want (3, true)", v, ok)
	}
	if FromPtr[int](nil).IsSome() {
		t.Error("FromPtr(nil) should be None")
	}

	doubled := Map(Some(4), func(v int) int { return v * 2 })
	if v, _ := doubled.Get(); v != 8 {
		t.Errorf("Map() = %d, want 8", v)
	}
	if Map(None[int](), func(v int) int { return v }).IsSome() {
		t.Error("Map(None) should be None")
	}
}
