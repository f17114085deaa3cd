package plotting

import "testing"

func TestEncodeSortedCodes(t *testing.T) {
	labels := []string{"A", "B", "A", "C", "B"}
	codes, uniques, first := Encode(labels)

	wantUniques := []string{"A", "B", "C"}
	for i, u := range wantUniques {
		if uniques[i] != u {
			t.Fatalf("uniques = %v, want %v", uniques, wantUniques)
		}
	}
	wantCodes := []int{0, 1, 0, 2, 1}
	for i, c := range wantCodes {
		if codes[i] != c {
			t.Fatalf("codes = %v, want %v", codes, wantCodes)
		}
	}
	// First occurrence per code: A at 0, B at 1, C at 3.
	wantFirst := []int{0, 1, 3}
	for i, f := range wantFirst {
		if first[i] != f {
			t.Fatalf("first = %v, want %v", first, wantFirst)
		}
	}
}

func TestEncodeBijection(t *testing.T) {
	labels := []string{"z", "m", "a", "z", "m", "q"}
	codes, uniques, _ := Encode(labels)

	// Every label maps to exactly one code and back.
	seen := make(map[int]string)
	for i, l := range labels {
		if prev, ok := seen[codes[i]]; ok && prev != l {
			t.Fatalf("code %d maps to both %q and %q", codes[i], prev, l)
		}
		seen[codes[i]] = l
		if uniques[codes[i]] != l {
			t.Fatalf("uniques[%d] = %q, want %q", codes[i], uniques[codes[i]], l)
		}
	}
	if len(seen) != len(uniques) {
		t.Fatalf("%d codes for %d uniques", len(seen), len(uniques))
	}
}

func TestEncodeFirstOccurrenceOrder(t *testing.T) {
	// Sorted-unique code order differs from first-seen order here.
	labels := []string{"late", "early", "late", "mid"}
	codes, uniques, first := Encode(labels)

	if uniques[0] != "early" || uniques[1] != "late" || uniques[2] != "mid" {
		t.Fatalf("uniques = %v", uniques)
	}
	if codes[0] != 1 || codes[1] != 0 || codes[3] != 2 {
		t.Fatalf("codes = %v", codes)
	}
	// Representative labels read back in code order.
	for k := range uniques {
		if labels[first[k]] != uniques[k] {
			t.Errorf("first[%d] labels %q, want %q", k, labels[first[k]], uniques[k])
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	codes, uniques, first := Encode(nil)
	if len(codes) != 0 || len(uniques) != 0 || len(first) != 0 {
		t.Errorf("expected empty encoding, got %v %v %v", codes, uniques, first)
	}
}
