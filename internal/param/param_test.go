package param

import "testing"

func TestFloatStorePassesValuesThrough(t *testing.T) {
	s := NewFloatStore(1.5)
	if got := s.Get(); got != 1.5 {
		t.Errorf("Get() = %v, want 1.5", got)
	}
	s.SetValue(2.25)
	if got := s.Get(); got != 2.25 {
		t.Errorf("Get() after SetValue = %v, want 2.25", got)
	}
	if got := s.Coerce(3.7); got != 3.7 {
		t.Errorf("Coerce(3.7) = %v, want 3.7", got)
	}
}

func TestIntStoreTruncatesTowardsZero(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.9, 1},
		{-1.9, -1},
		{0.4, 0},
		{-0.4, 0},
		{3, 3},
	}
	for _, tc := range cases {
		s := NewIntStore(0)
		if got := s.Coerce(tc.in); got != tc.want {
			t.Errorf("Coerce(%v) = %v, want %v", tc.in, got, tc.want)
		}
		s.SetValue(tc.in)
		if got := s.Get(); got != tc.want {
			t.Errorf("Get after SetValue(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIntStoreTruncatesInitialValue(t *testing.T) {
	s := NewIntStore(2.8)
	if got := s.Get(); got != 2 {
		t.Errorf("Get() = %v, want 2", got)
	}
}

func TestStoreForType(t *testing.T) {
	s, err := StoreForType("float", 1.5)
	if err != nil {
		t.Fatalf("StoreForType(float): %v", err)
	}
	if _, ok := s.(*FloatStore); !ok {
		t.Errorf("StoreForType(float) = %T, want *FloatStore", s)
	}

	s, err = StoreForType("int", 1.5)
	if err != nil {
		t.Fatalf("StoreForType(int): %v", err)
	}
	if _, ok := s.(*IntStore); !ok {
		t.Errorf("StoreForType(int) = %T, want *IntStore", s)
	}
	if got := s.Get(); got != 1 {
		t.Errorf("int store initial = %v, want 1", got)
	}

	if _, err := StoreForType("string", 0); err == nil {
		t.Error("StoreForType(string) succeeded, want error")
	}
}
