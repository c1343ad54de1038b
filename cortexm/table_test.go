package cortexm

import "testing"

func TestTableAlignment(t *testing.T) {
	tests := []struct {
		slots    int
		wordSize uintptr
		want     uintptr
	}{
		{17, 4, 512},
		{58, 4, 512},
		{128, 4, 512},
		{129, 4, 1024},
		{153, 4, 1024},
		{58, 8, 512},
		{65, 8, 1024},
	}

	for _, tc := range tests {
		if got := TableAlignmentFor(tc.slots, tc.wordSize); got != tc.want {
			t.Errorf("%d slots of %d bytes: expected %d, got %d", tc.slots, tc.wordSize, tc.want, got)
		}
	}
}

func TestAlignTable(t *testing.T) {
	for _, slots := range []int{17, 58, 100, 300} {
		table := AlignTable(slots)
		if len(table) != slots {
			t.Errorf("expected %d slots, got %d", slots, len(table))
		}
		if !TableAligned(table) {
			t.Errorf("table of %d slots at %#x is not aligned to %d", slots, TableAddress(table), TableAlignment(slots))
		}
	}
}

func TestTableAddressEmpty(t *testing.T) {
	if TableAddress(nil) != 0 {
		t.Error("expected zero address for an empty table")
	}
	if TableAligned(nil) {
		t.Error("an empty table cannot be aligned")
	}
}
