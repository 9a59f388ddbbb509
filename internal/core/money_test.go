package core

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"50000", 50000, false},
		{"50.000", 50000, false},
		{"50,000", 50000, false},
		{"1.000.000", 1000000, false},
		{"Rp 15.000", 15000, false},
		{"  1000  ", 1000, false},
		{"0", 0, false},
		{"", 0, true},
		{"-500", 0, true},
		{"12.5x", 0, true},
		{"abc", 0, true},
		{"Rp", 0, true},
		// decimal-looking input must not collapse into a bigger number
		{"1,5", 0, true},
		{"12.34", 0, true},
		{"1.234,5", 0, true},
		{".500", 0, true},
		{"500.", 0, true},
		{"1.0000", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseAmount(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1.000"},
		{50000, "50.000"},
		{1234567, "1.234.567"},
		{-15000, "-15.000"},
	}
	for _, tc := range tests {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRupiah(t *testing.T) {
	if got := FormatRupiah(35000); got != "Rp 35.000" {
		t.Fatalf("FormatRupiah(35000) = %q", got)
	}
	if got := FormatRupiah(-2500); got != "Rp -2.500" {
		t.Fatalf("FormatRupiah(-2500) = %q", got)
	}
}
