package hwy

import "testing"

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		size      int
		wantFull  []int
		wantTail  int
		wantCount int
	}{
		{0, nil, -1, 0},
		{3, nil, 0, 3},
		{4, []int{0}, -1, 0},
		{10, []int{0, 4}, 8, 2},
	}
	for _, tt := range tests {
		var full []int
		tail, count := -1, 0
		ProcessWithTail(tt.size,
			func(offset int) { full = append(full, offset) },
			func(offset, c int) { tail, count = offset, c },
		)
		if len(full) != len(tt.wantFull) {
			t.Errorf("size %d: full calls %v, want %v", tt.size, full, tt.wantFull)
			continue
		}
		for i := range full {
			if full[i] != tt.wantFull[i] {
				t.Errorf("size %d: full calls %v, want %v", tt.size, full, tt.wantFull)
				break
			}
		}
		if tail != tt.wantTail || count != tt.wantCount {
			t.Errorf("size %d: tail (%d, %d), want (%d, %d)", tt.size, tail, count, tt.wantTail, tt.wantCount)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	for _, tt := range []struct{ in, want int }{{0, 0}, {1, 4}, {4, 4}, {5, 8}, {17, 20}} {
		if got := AlignedSize(tt.in); got != tt.want {
			t.Errorf("AlignedSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if got := IsAligned(tt.in); got != (tt.in%4 == 0) {
			t.Errorf("IsAligned(%d) = %v", tt.in, got)
		}
	}
}
