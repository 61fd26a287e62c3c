package group

import "testing"

func TestOptional(t *testing.T) {
	u := NewUndefined[int64]()
	if u.IsDefined() {
		t.Fatal("expected undefined")
	}
	if got := u.GetOrDefault(42); got != 42 {
		t.Fatalf("GetOrDefault = %d, want 42", got)
	}

	d := NewDefined(int64(7))
	if !d.IsDefined() {
		t.Fatal("expected defined")
	}
	if got := d.Get(); got != 7 {
		t.Fatalf("Get = %d, want 7", got)
	}
}

func TestOptionalGetPanicsWhenUndefined(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewUndefined[int64]().Get()
}
