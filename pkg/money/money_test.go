package money

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1.000"},
		{150000, "150.000"},
		{1234567, "1.234.567"},
		{-45000, "-45.000"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCoerce(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"nil", nil, 0},
		{"int", 42, 42},
		{"int64", int64(150000), 150000},
		{"float truncates", 99.99, 99},
		{"plain string", "150000", 150000},
		{"grouped string", "150.000", 150000},
		{"comma grouped", "1,250,000", 1250000},
		{"decimal string", "99.5", 99},
		{"garbage", "abc", 0},
		{"empty", "", 0},
		{"bool", true, 0},
	}
	for _, c := range cases {
		if got := Coerce(c.in); got != c.want {
			t.Errorf("%s: Coerce(%v) = %d, want %d", c.name, c.in, got, c.want)
		}
	}
}

func TestRounding(t *testing.T) {
	if got := Floor(7692.9); got != 7692 {
		t.Errorf("Floor(7692.9) = %d", got)
	}
	if got := Floor(-3.7); got != -3 {
		t.Errorf("Floor(-3.7) = %d", got)
	}
	if got := RoundHalfUp(7692.5); got != 7693 {
		t.Errorf("RoundHalfUp(7692.5) = %d", got)
	}
	if got := RoundHalfUp(7692.3); got != 7692 {
		t.Errorf("RoundHalfUp(7692.3) = %d", got)
	}
	if got := RoundHalfUp(-2.5); got != -3 {
		t.Errorf("RoundHalfUp(-2.5) = %d", got)
	}
}
