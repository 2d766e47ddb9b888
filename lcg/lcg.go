// Package lcg implements the multiplicative congruential generator behind
// the universal ping schedule.
//
// The generator is the recurrence
//
//	state = multiplier * state (mod modulus)
//
// with no additive term, so the state after k steps is
// multiplier^k * seed (mod modulus) and can be computed for any k with a
// single modular exponentiation. Two generators with the same parameters
// meet at exactly the same state after the same number of steps no matter
// how those steps were split between Advance and AdvanceBy calls.
//
// The default parameters are shared by every conforming implementation and
// must not be changed: pings computed anywhere on Earth from the same tick
// agree because everyone runs this exact recurrence.
package lcg

import (
	"math/big"

	"github.com/joomcode/errorx"
)

// Default parameters of the shared recurrence.
const (
	// DefaultMultiplier is the step multiplier.
	DefaultMultiplier int64 = 3125
	// DefaultModulus is the working modulus. The multiplier has a huge
	// multiplicative order modulo it, so the walk does not cycle within
	// any horizon a schedule will ever reach.
	DefaultModulus int64 = 34359738337
	// DefaultSeed is the published initial state.
	DefaultSeed int64 = 20180809
)

// Generator is a deterministic multiplicative congruential generator.
// It is a plain value machine: no locks, no goroutines. A Generator must
// not be used from multiple goroutines without external synchronization.
type Generator struct {
	multiplier *big.Int
	modulus    *big.Int
	state      *big.Int
}

// New returns a generator with explicit parameters. All three arguments
// must be non-nil; they are copied, and multiplier and state are reduced
// modulo modulus, so the state always stays within [0, modulus).
//
// A nil or non-positive modulus is a call contract violation and panics
// with ErrBadModulus.
func New(multiplier, modulus, state *big.Int) *Generator {
	if modulus == nil || modulus.Sign() <= 0 {
		errorx.Panic(ErrBadModulus.New("modulus must be a positive integer").
			WithProperty(EKModulus, modulus))
	}
	g := &Generator{
		multiplier: new(big.Int),
		modulus:    new(big.Int).Set(modulus),
		state:      new(big.Int),
	}
	g.multiplier.Mod(multiplier, g.modulus)
	g.state.Mod(state, g.modulus)
	return g
}

// Default returns the generator every deployment shares: the fixed
// multiplier and modulus with the published seed as the initial state.
func Default() *Generator {
	return New(big.NewInt(DefaultMultiplier), big.NewInt(DefaultModulus), big.NewInt(DefaultSeed))
}

// Advance steps the recurrence once. It is equivalent to AdvanceBy(1) but
// skips the exponentiation, which matters on the scheduler's scan path.
func (g *Generator) Advance() {
	g.state.Mod(g.state.Mul(g.multiplier, g.state), g.modulus)
}

// AdvanceBy steps the recurrence n times at once by computing
// multiplier^n (mod modulus) with modular exponentiation, so the cost
// grows with log n, not n. AdvanceBy(0) leaves the state untouched.
//
// A nil or negative n is a call contract violation and panics with
// ErrNegativeCount.
func (g *Generator) AdvanceBy(n *big.Int) {
	if n == nil || n.Sign() < 0 {
		errorx.Panic(ErrNegativeCount.New("advance count must be non-negative").
			WithProperty(EKCount, n))
	}
	factor := new(big.Int).Exp(g.multiplier, n, g.modulus)
	g.state.Mod(g.state.Mul(factor, g.state), g.modulus)
}

// Below reports whether the current state is strictly below limit.
// It is the tick acceptance test and does not copy the state.
func (g *Generator) Below(limit *big.Int) bool {
	return g.state.Cmp(limit) < 0
}

// State returns a copy of the current state.
func (g *Generator) State() *big.Int {
	return new(big.Int).Set(g.state)
}

// Multiplier returns a copy of the step multiplier.
func (g *Generator) Multiplier() *big.Int {
	return new(big.Int).Set(g.multiplier)
}

// Modulus returns a copy of the working modulus.
func (g *Generator) Modulus() *big.Int {
	return new(big.Int).Set(g.modulus)
}

// Clone returns an independent generator at the same position. Stepping
// one does not disturb the other.
func (g *Generator) Clone() *Generator {
	return &Generator{
		multiplier: new(big.Int).Set(g.multiplier),
		modulus:    new(big.Int).Set(g.modulus),
		state:      new(big.Int).Set(g.state),
	}
}
