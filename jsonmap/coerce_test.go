package jsonmap

import "testing"

func TestAsInt(t *testing.T) {
	cases := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"float", float64(42), 42, true},
		{"float_truncates", 41.9, 41, true},
		{"int", 7, 7, true},
		{"string", "13", 13, true},
		{"negative_string", "-2", -2, true},
		{"bad_string", "12px", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := asInt(c.in)
			if got != c.want || ok != c.wantOK {
				t.Fatalf("asInt(%v) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestAsUint32(t *testing.T) {
	cases := []struct {
		name   string
		in     any
		want   uint32
		wantOK bool
	}{
		{"zero", float64(0), 0, true},
		{"max", float64(0xffffffff), 0xffffffff, true},
		{"negative", float64(-1), 0, false},
		{"fractional", 1.5, 0, false},
		{"too_large", float64(1 << 33), 0, false},
		{"string", "2147483650", 2147483650, true},
		{"garbage", "x", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := asUint32(c.in)
			if got != c.want || ok != c.wantOK {
				t.Fatalf("asUint32(%v) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestAsString(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "a", "a"},
		{"integral_float", float64(120), "120"},
		{"fractional_float", 0.5, "0.5"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"map", map[string]any{}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := asString(c.in); got != c.want {
				t.Fatalf("asString(%v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestAsBool(t *testing.T) {
	truthy := []any{true, float64(1), float64(-1), "true", "1", 1}
	for _, v := range truthy {
		if !asBool(v) {
			t.Fatalf("asBool(%v) = false, want true", v)
		}
	}
	falsy := []any{false, float64(0), "false", "yes", nil, []any{}}
	for _, v := range falsy {
		if asBool(v) {
			t.Fatalf("asBool(%v) = true, want false", v)
		}
	}
}
