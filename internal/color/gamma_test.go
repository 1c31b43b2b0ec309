package color

import "testing"

func TestContrastGammaIdentity(t *testing.T) {
	got := ContrastGamma(0, 1)
	if got != Identity() {
		t.Errorf("ContrastGamma(0, 1) is not the identity table")
	}
}

func TestTablesMonotonic(t *testing.T) {
	tests := []struct {
		name  string
		table Table
	}{
		{"contrast", ContrastGamma(0.5, 1)},
		{"gamma", ContrastGamma(0, 1.8)},
		{"both", ContrastGamma(1, 2.2)},
		{"srgb", SRGBEncode()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 1; i < 256; i++ {
				if tt.table[i] < tt.table[i-1] {
					t.Fatalf("table[%d] = %d < table[%d] = %d", i, tt.table[i], i-1, tt.table[i-1])
				}
			}
			if tt.table[0] != 0 || tt.table[255] != 255 {
				t.Errorf("endpoints = %d, %d, want 0, 255", tt.table[0], tt.table[255])
			}
		})
	}
}

func TestContrastBoostsMidtones(t *testing.T) {
	tbl := ContrastGamma(0.5, 1)
	if tbl[128] <= 128 {
		t.Errorf("ContrastGamma(0.5, 1)[128] = %d, want > 128", tbl[128])
	}
}
