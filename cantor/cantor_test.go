package cantor

import (
	"testing"

	"github.com/krfkeith/bijective-goedel-numberings/bignat"
	"github.com/krfkeith/bijective-goedel-numberings/combin"
)

func bn(n uint64) bignat.BigNat { return bignat.FromUint64(n) }

func bns(ns ...uint64) []bignat.BigNat {
	out := make([]bignat.BigNat, len(ns))
	for i, n := range ns {
		out[i] = bn(n)
	}
	return out
}

func TestListToSetSetToList_Inverse(t *testing.T) {
	xs := bns(3, 0, 5, 1, 0, 7)
	ys := ListToSet(xs)

	// ys must be strictly increasing.
	for i := 1; i < len(ys); i++ {
		if !ys[i-1].Less(ys[i]) {
			t.Fatalf("ListToSet result not strictly increasing at %d: %v", i, ys)
		}
	}

	back := SetToList(ys)
	for i := range xs {
		if !back[i].Equal(xs[i]) {
			t.Errorf("SetToList(ListToSet(xs))[%d] = %s, want %s", i, back[i], xs[i])
		}
	}
}

func TestFromTuple_EmptyIsZero(t *testing.T) {
	if got := FromTuple(nil); !got.IsZero() {
		t.Errorf("FromTuple(nil) = %s, want 0", got)
	}
}

func TestToTuple_ZeroLength(t *testing.T) {
	got := ToTuple(0, bn(0))
	if len(got) != 0 {
		t.Errorf("ToTuple(0, 0) = %v, want []", got)
	}
}

func TestFromToTuple_SpecScenario(t *testing.T) {
	xs := bns(1, 0, 0, 2, 2, 0, 2, 1, 6, 0, 0, 3)
	got := FromTuple(xs)
	want := bn(34567890)
	if !got.Equal(want) {
		t.Fatalf("FromTuple(%v) = %s, want %s", xs, got, want)
	}

	back := ToTuple(12, want)
	if len(back) != len(xs) {
		t.Fatalf("ToTuple(12, 34567890) length = %d, want %d", len(back), len(xs))
	}
	for i := range xs {
		if !back[i].Equal(xs[i]) {
			t.Errorf("ToTuple(12, 34567890)[%d] = %s, want %s", i, back[i], xs[i])
		}
	}
}

func TestCombinadics_SpecScenario(t *testing.T) {
	result := Combinadics(5, bn(72))
	if len(result) != 5 {
		t.Fatalf("Combinadics(5, 72) length = %d, want 5", len(result))
	}
	for i := 1; i < len(result); i++ {
		if !result[i].Less(result[i-1]) {
			t.Fatalf("Combinadics result not strictly decreasing: %v", result)
		}
	}
	sum := bignat.Zero()
	for idx, m := range result {
		j := 5 - idx
		sum = sum.Add(combin.Binomial(m, bn(uint64(j))))
	}
	if !sum.Equal(bn(72)) {
		t.Errorf("sum of Binomial(m_j, j) = %s, want 72", sum)
	}
}

func TestRoundTrip_ManyLengthsAndValues(t *testing.T) {
	for k := 0; k <= 6; k++ {
		for _, raw := range []uint64{0, 1, 2, 17, 1000, 999999} {
			n := bn(raw)
			xs := ToTuple(k, n)
			if len(xs) != k {
				t.Fatalf("ToTuple(%d, %d) length = %d", k, raw, len(xs))
			}
			back := FromTuple(xs)
			if !back.Equal(n) {
				t.Errorf("FromTuple(ToTuple(%d, %d)) = %s, want %d", k, raw, back, raw)
			}
		}
	}
}

func TestRoundTrip_ArbitraryTuple(t *testing.T) {
	xs := bns(5, 9, 0, 123456789, 2)
	n := FromTuple(xs)
	back := ToTuple(len(xs), n)
	for i := range xs {
		if !back[i].Equal(xs[i]) {
			t.Errorf("ToTuple(FromTuple(xs))[%d] = %s, want %s", i, back[i], xs[i])
		}
	}
}
