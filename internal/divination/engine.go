// internal/divination/engine.go
//
// The counting procedure itself. Each line starts from the forty-nine
// working stalks, goes through three changes, and the remaining count
// divided by four names the line. The engine keeps no state between
// castings; randomness comes in through an injectable Splitter so tests
// can replay a fixed sequence.

package divination

import (
	"math/rand"
	"time"
)

const (
	// PoolSize is the classical working pool: fifty stalks with one set
	// aside once before counting begins. The set-aside stalk is never
	// modeled; every line starts from forty-nine.
	PoolSize = 49

	changesPerLine   = 3
	linesPerHexagram = 6
)

// Engine performs complete castings. The zero value is not usable;
// construct with New.
type Engine struct {
	split  Splitter
	rng    *rand.Rand
	spread float64
}

// Option customizes Engine construction.
type Option func(*Engine)

// WithSplitter replaces the stalk-splitting capability entirely. Tests use
// this to script exact splits.
func WithSplitter(split Splitter) Option {
	return func(e *Engine) {
		if split != nil {
			e.split = split
		}
	}
}

// WithRand supplies the pseudorandom source backing the default splitter.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed seeds the default splitter deterministically.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpread overrides the hand-split standard deviation.
func WithSpread(spread float64) Option {
	return func(e *Engine) {
		if spread > 0 {
			e.spread = spread
		}
	}
}

// New builds an engine. Without options it seeds itself from crypto/rand
// and splits with the default spread.
func New(opts ...Option) *Engine {
	e := &Engine{spread: DefaultSpread}
	for _, opt := range opts {
		opt(e)
	}
	if e.split == nil {
		if e.rng == nil {
			seed, err := NewSeed()
			if err != nil {
				seed = time.Now().UnixNano()
			}
			e.rng = rand.New(rand.NewSource(seed))
		}
		e.split = NewGaussianSplitter(e.rng, e.spread)
	}
	return e
}

// Run performs one full casting: six lines, bottom to top, each resolved
// independently from a fresh forty-nine stalk pool. Every record in the
// returned Result is freshly allocated.
func (e *Engine) Run() Result {
	log := make([]Line, 0, linesPerHexagram)
	values := make([]int, 0, linesPerHexagram)
	for idx := 1; idx <= linesPerHexagram; idx++ {
		value, changes := e.resolveLine()
		values = append(values, value)
		log = append(log, Line{Index: idx, Value: value, Changes: changes})
	}
	hex, err := BuildHexagram(values)
	if err != nil {
		// Unreachable: resolveLine only produces values in {6,7,8,9}.
		panic(err)
	}
	return Result{Hexagram: hex, Log: log}
}

// resolveLine applies three changes from the full pool and names the line.
// After the third change the remaining total is always one of 24, 28, 32
// or 36, so the quotient lands in {6,7,8,9}.
func (e *Engine) resolveLine() (int, []Change) {
	total := PoolSize
	changes := make([]Change, 0, changesPerLine)
	for i := 0; i < changesPerLine; i++ {
		c := e.change(total)
		changes = append(changes, c)
		total = c.NewTotal
	}
	return total / 4, changes
}

// change performs one 变 on the current total: split the pile (分二), hang
// one stalk from the right pile (挂一), count both piles off by fours
// (揲四) and set the remainders aside with the hung stalk (归奇).
func (e *Engine) change(total int) Change {
	left, right := e.split(total)
	leftRem := stalkRemainder(left)
	rightRem := stalkRemainder(right - 1)
	removed := 1 + leftRem + rightRem
	return Change{
		Left:     left,
		Right:    right,
		LeftRem:  leftRem,
		RightRem: rightRem,
		Removed:  removed,
		NewTotal: total - removed,
	}
}

// stalkRemainder counts a pile off by fours and keeps the last group.
// A pile that divides evenly keeps a full group of four, never zero, which
// is what bounds every remainder to [1,4].
func stalkRemainder(n int) int {
	r := n % 4
	if r == 0 {
		r = 4
	}
	return r
}
