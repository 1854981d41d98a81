package divination

import (
	"math/rand"
	"testing"
)

func TestGaussianSplitterPilesAlwaysNonempty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	split := NewGaussianSplitter(rng, DefaultSpread)
	for _, total := range []int{2, 3, 5, 32, 36, 40, 44, 49} {
		for i := 0; i < 500; i++ {
			left, right := split(total)
			if left < 1 || right < 1 {
				t.Fatalf("split(%d) = (%d, %d), empty pile", total, left, right)
			}
			if left+right != total {
				t.Fatalf("split(%d) = (%d, %d), stalks lost", total, left, right)
			}
		}
	}
}

func TestGaussianSplitterZeroSpreadHitsMidpoint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	split := NewGaussianSplitter(rng, 0)
	if left, right := split(44); left != 22 || right != 22 {
		t.Fatalf("split(44) = (%d, %d), want (22, 22)", left, right)
	}
	// 24.5 rounds away from zero.
	if left, right := split(49); left != 25 || right != 24 {
		t.Fatalf("split(49) = (%d, %d), want (25, 24)", left, right)
	}
}

func TestGaussianSplitterDeterministicPerSeed(t *testing.T) {
	a := NewGaussianSplitter(rand.New(rand.NewSource(99)), DefaultSpread)
	b := NewGaussianSplitter(rand.New(rand.NewSource(99)), DefaultSpread)
	for i := 0; i < 100; i++ {
		al, ar := a(49)
		bl, br := b(49)
		if al != bl || ar != br {
			t.Fatalf("draw %d diverged: (%d,%d) vs (%d,%d)", i, al, ar, bl, br)
		}
	}
}
