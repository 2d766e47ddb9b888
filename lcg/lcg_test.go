package lcg_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/dcao/tagtime/lcg"
)

// States of the default generator after 1, 2, 3 and 4 steps. Shared by
// every conforming implementation of the schedule.
var refStates = []int64{28705289788, 25113527930, 2132419542, 32381569709}

func recoverContract(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := errorx.ErrorFromPanic(r)
		require.True(t, ok, "panic is not an errorx error: %v", r)
		err = e
	}()
	fn()
	return nil
}

func TestAdvanceMatchesReferenceStates(t *testing.T) {
	g := Default()
	for i, want := range refStates {
		g.Advance()
		assert.Equal(t, want, g.State().Int64(), "state after %d steps", i+1)
	}
}

func TestAdvanceByMatchesReferenceStates(t *testing.T) {
	for i, want := range refStates {
		g := Default()
		g.AdvanceBy(big.NewInt(int64(i + 1)))
		assert.Equal(t, want, g.State().Int64(), "state after jump of %d", i+1)
	}
}

func TestAdvanceByMatchesSingleSteps(t *testing.T) {
	jump := Default()
	step := Default()
	rng := rand.New(rand.NewSource(20180809))
	total := int64(0)
	for i := 0; i < 50; i++ {
		n := rng.Int63n(2000)
		jump.AdvanceBy(big.NewInt(n))
		for j := int64(0); j < n; j++ {
			step.Advance()
		}
		total += n
		require.Equal(t, step.State().Int64(), jump.State().Int64(),
			"diverged after %d total steps", total)
	}
}

func TestAdvanceBySplitsIntoParts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		p, q := rng.Int63(), rng.Int63()
		whole := Default()
		split := Default()
		whole.AdvanceBy(new(big.Int).Add(big.NewInt(p), big.NewInt(q)))
		split.AdvanceBy(big.NewInt(p))
		split.AdvanceBy(big.NewInt(q))
		assert.Equal(t, whole.State().Int64(), split.State().Int64(),
			"p=%d q=%d", p, q)
	}
}

func TestAdvanceByZeroKeepsState(t *testing.T) {
	g := Default()
	g.Advance()
	before := g.State()
	g.AdvanceBy(big.NewInt(0))
	assert.Equal(t, before.Int64(), g.State().Int64())
}

func TestAdvanceByRejectsNegativeCount(t *testing.T) {
	g := Default()
	err := recoverContract(t, func() { g.AdvanceBy(big.NewInt(-1)) })
	assert.True(t, errorx.IsOfType(err, ErrNegativeCount))
	assert.True(t, errorx.HasTrait(err, ErrTraitContract))
	// the failed call must not have touched the state
	assert.Equal(t, DefaultSeed, g.State().Int64())
}

func TestAdvanceByRejectsNilCount(t *testing.T) {
	g := Default()
	err := recoverContract(t, func() { g.AdvanceBy(nil) })
	assert.True(t, errorx.IsOfType(err, ErrNegativeCount))
}

func TestNewRejectsBadModulus(t *testing.T) {
	for _, modulus := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5)} {
		err := recoverContract(t, func() {
			New(big.NewInt(DefaultMultiplier), modulus, big.NewInt(DefaultSeed))
		})
		assert.True(t, errorx.IsOfType(err, ErrBadModulus), "modulus %v", modulus)
		assert.True(t, errorx.HasTrait(err, ErrTraitContract), "modulus %v", modulus)
	}
}

func TestNewReducesArguments(t *testing.T) {
	modulus := big.NewInt(DefaultModulus)

	wrapped := new(big.Int).Add(modulus, big.NewInt(DefaultSeed))
	g := New(big.NewInt(DefaultMultiplier), modulus, wrapped)
	assert.Equal(t, DefaultSeed, g.State().Int64())

	negative := New(big.NewInt(DefaultMultiplier), modulus, big.NewInt(-1))
	assert.Equal(t, DefaultModulus-1, negative.State().Int64())

	bigMult := new(big.Int).Mul(modulus, big.NewInt(2))
	bigMult.Add(bigMult, big.NewInt(DefaultMultiplier))
	reduced := New(bigMult, modulus, big.NewInt(DefaultSeed))
	assert.Equal(t, DefaultMultiplier, reduced.Multiplier().Int64())
	reduced.Advance()
	assert.Equal(t, refStates[0], reduced.State().Int64())
}

func TestNewCopiesArguments(t *testing.T) {
	multiplier := big.NewInt(DefaultMultiplier)
	modulus := big.NewInt(DefaultModulus)
	state := big.NewInt(DefaultSeed)
	g := New(multiplier, modulus, state)

	multiplier.SetInt64(7)
	modulus.SetInt64(11)
	state.SetInt64(13)

	g.Advance()
	assert.Equal(t, refStates[0], g.State().Int64())
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := Default()
	g.State().SetInt64(0)
	g.Multiplier().SetInt64(0)
	g.Modulus().SetInt64(0)
	g.Advance()
	assert.Equal(t, refStates[0], g.State().Int64())
}

func TestCloneIsIndependent(t *testing.T) {
	g := Default()
	g.Advance()
	c := g.Clone()
	for i := 0; i < 10; i++ {
		c.Advance()
	}
	assert.Equal(t, refStates[0], g.State().Int64())

	replay := Default()
	replay.AdvanceBy(big.NewInt(11))
	assert.Equal(t, replay.State().Int64(), c.State().Int64())
}

func TestBelowIsStrict(t *testing.T) {
	g := Default()
	assert.False(t, g.Below(big.NewInt(DefaultSeed)))
	assert.True(t, g.Below(big.NewInt(DefaultSeed+1)))
	assert.False(t, g.Below(big.NewInt(0)))
}

var sum int

func BenchmarkAdvance(b *testing.B) {
	g := Default()
	for i := 0; i < b.N; i++ {
		g.Advance()
	}
	sum += int(g.State().Int64() & 1)
}

func BenchmarkAdvanceBy(b *testing.B) {
	g := Default()
	n := new(big.Int).Lsh(big.NewInt(1), 62)
	for i := 0; i < b.N; i++ {
		g.AdvanceBy(n)
	}
	sum += int(g.State().Int64() & 1)
}
