package main

import "testing"

func TestParseLayout(t *testing.T) {
	cols, rows, err := parseLayout("11x6")
	if err != nil || cols != 11 || rows != 6 {
		t.Fatalf("parseLayout(11x6) = %d, %d, %v", cols, rows, err)
	}
	for _, bad := range []string{"", "11", "11x", "x6", "0x6", "3x-1", "axb", "1x2x3"} {
		if _, _, err := parseLayout(bad); err == nil {
			t.Fatalf("parseLayout(%q) should fail", bad)
		}
	}
}
