package forms

import "testing"

func TestNumberCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"  ", 0},
		{"12.5", 12.5},
		{" 7 ", 7},
		{"abc", 0},
		{"-3.25", -3.25},
	}
	for _, c := range cases {
		if got := Number(c.in); got != c.want {
			t.Fatalf("Number(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIntegerCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"10", 10},
		{"-2", -2},
		{"3.5", 0},
		{"x", 0},
	}
	for _, c := range cases {
		if got := Integer(c.in); got != c.want {
			t.Fatalf("Integer(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
