package divination

import (
	"reflect"
	"testing"
)

// scriptSplitter replays a fixed sequence of left-pile sizes, cycling when
// the script runs out.
func scriptSplitter(lefts []int) Splitter {
	i := 0
	return func(total int) (int, int) {
		left := lefts[i%len(lefts)]
		i++
		return left, total - left
	}
}

func TestRunInvariants(t *testing.T) {
	totalsAfter := []map[int]bool{
		{40: true, 44: true},
		{32: true, 36: true, 40: true},
		{24: true, 28: true, 32: true, 36: true},
	}
	eng := New(WithSeed(12345))
	for run := 0; run < 200; run++ {
		res := eng.Run()
		if len(res.Log) != 6 {
			t.Fatalf("run %d: %d line records", run, len(res.Log))
		}
		for _, line := range res.Log {
			if line.Value < OldYin || line.Value > OldYang {
				t.Fatalf("run %d line %d: value %d", run, line.Index, line.Value)
			}
			if len(line.Changes) != 3 {
				t.Fatalf("run %d line %d: %d changes", run, line.Index, len(line.Changes))
			}
			total := PoolSize
			for ci, c := range line.Changes {
				if c.LeftRem < 1 || c.LeftRem > 4 || c.RightRem < 1 || c.RightRem > 4 {
					t.Fatalf("remainders out of range: %+v", c)
				}
				if c.Removed != 1+c.LeftRem+c.RightRem {
					t.Fatalf("removed mismatch: %+v", c)
				}
				if c.NewTotal != total-c.Removed {
					t.Fatalf("total mismatch after %d: %+v", total, c)
				}
				if !totalsAfter[ci][c.NewTotal] {
					t.Fatalf("change %d landed on %d", ci+1, c.NewTotal)
				}
				total = c.NewTotal
			}
			if line.Value != total/4 {
				t.Fatalf("line %d: value %d from final total %d", line.Index, line.Value, total)
			}
		}
	}
}

func TestRunDeterministicWithSeed(t *testing.T) {
	first := New(WithSeed(42)).Run()
	second := New(WithSeed(42)).Run()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("seeded runs diverged:\n%+v\n%+v", first, second)
	}
}

// The worked example: 49 split 25/24 removes 5, 44 split 22/22 removes 4,
// 40 split 20/20 removes 8, leaving 32 and a young yin line.
func TestRunScriptedWorkedExample(t *testing.T) {
	eng := New(WithSplitter(scriptSplitter([]int{25, 22, 20})))
	res := eng.Run()

	want := []Change{
		{Left: 25, Right: 24, LeftRem: 1, RightRem: 3, Removed: 5, NewTotal: 44},
		{Left: 22, Right: 22, LeftRem: 2, RightRem: 1, Removed: 4, NewTotal: 40},
		{Left: 20, Right: 20, LeftRem: 4, RightRem: 3, Removed: 8, NewTotal: 32},
	}
	if !reflect.DeepEqual(res.Log[0].Changes, want) {
		t.Fatalf("changes = %+v, want %+v", res.Log[0].Changes, want)
	}
	for _, line := range res.Log {
		if line.Value != YoungYin {
			t.Fatalf("line %d value = %d, want %d", line.Index, line.Value, YoungYin)
		}
	}
	if res.Hexagram.OriginalBinary != "000000" || res.Hexagram.HasChange {
		t.Fatalf("hexagram = %+v", res.Hexagram)
	}
}

func TestRunRecordsDoNotShareState(t *testing.T) {
	eng := New(WithSplitter(scriptSplitter([]int{25, 22, 20})))
	res := eng.Run()
	res.Log[0].Changes[0].NewTotal = -1
	res.Hexagram.Lines[0] = 9
	if res.Log[1].Changes[0].NewTotal != 44 {
		t.Fatalf("line records share change storage: %+v", res.Log[1].Changes[0])
	}
	if res.Log[0].Value != YoungYin {
		t.Fatalf("hexagram lines alias line records: %+v", res.Log[0])
	}
}

func TestStalkRemainderRemapsZeroToFour(t *testing.T) {
	cases := map[int]int{0: 4, 1: 1, 2: 2, 3: 3, 4: 4, 5: 1, 19: 3, 20: 4, 23: 3, 24: 4}
	for n, want := range cases {
		if got := stalkRemainder(n); got != want {
			t.Fatalf("stalkRemainder(%d) = %d, want %d", n, got, want)
		}
	}
}
