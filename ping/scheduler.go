package ping

import (
	"math/big"
	"time"

	"github.com/dcao/tagtime/lcg"
)

// DefaultGapSeconds is the average interval between pings when the caller
// does not choose one: 45 minutes.
const DefaultGapSeconds int64 = 2700

// The schedule is indexed by 100 ms ticks counted from the Unix epoch.
const (
	ticksPerSecond = 10
	msPerTick      = 100
)

var ticksPerSecondBig = big.NewInt(ticksPerSecond)

// Opts holds scheduler construction options. The zero value is a valid
// configuration: the shared default schedule.
type Opts struct {
	// Gap is the desired average interval between pings, in seconds.
	// Nil means DefaultGapSeconds. It must be positive, and small enough
	// that modulus/(gap*10) does not truncate to zero.
	Gap *big.Int

	// Gen is the tick generator the schedule is derived from, positioned
	// at the start instant's tick. Nil means lcg.Default(). The scheduler
	// takes exclusive ownership of it: the caller must not retain or
	// step it afterwards.
	Gen *lcg.Generator
}

// Scheduler produces the ping instants of the universal schedule, one call
// at a time. See the package comment for the model.
type Scheduler struct {
	time      time.Time
	gap       *big.Int
	gen       *lcg.Generator
	threshold *big.Int
}

// New returns a scheduler whose last committed ping is the start instant
// itself, so the first produced ping is the first one strictly after
// start's tick. Instants are reported in UTC.
//
// The gap is validated here and never re-checked later: a zero or negative
// gap fails with ErrNonPositiveGap, and a gap large enough to truncate the
// acceptance threshold to zero fails with ErrGapTooLarge.
func New(start time.Time, opts Opts) (*Scheduler, error) {
	gap := opts.Gap
	if gap == nil {
		gap = big.NewInt(DefaultGapSeconds)
	}
	if gap.Sign() <= 0 {
		return nil, ErrNonPositiveGap.New("gap must be a positive number of seconds").
			WithProperty(EKGap, gap)
	}
	gen := opts.Gen
	if gen == nil {
		gen = lcg.Default()
	}
	s := &Scheduler{
		time: start.UTC(),
		gap:  new(big.Int).Set(gap),
		gen:  gen,
	}
	s.threshold = s.gen.Modulus()
	s.threshold.Div(s.threshold, new(big.Int).Mul(s.gap, ticksPerSecondBig))
	if s.threshold.Sign() == 0 {
		return nil, ErrGapTooLarge.New("no tick can fall below a zero threshold").
			WithProperty(EKGap, gap)
	}
	return s, nil
}

// FromMillis returns a scheduler over the shared default schedule, seeded
// at the given Unix-millisecond instant.
func FromMillis(ms int64) *Scheduler {
	s, _ := New(time.UnixMilli(ms), Opts{}) // defaults always construct
	return s
}

// AdvanceToNext moves the scheduler to the first ping strictly after the
// tick containing cur. If cur is earlier than the last committed ping the
// call is a no-op: the committed ping stays the answer until the caller's
// clock passes it, so replaying an old instant cannot rewind the schedule.
//
// The generator is first re-synchronized to cur's tick with one
// logarithmic jump (the outcomes of the skipped ticks are not needed),
// then stepped tick by tick until the state falls below the threshold.
func (s *Scheduler) AdvanceToNext(cur time.Time) {
	if cur.Before(s.time) {
		return
	}

	prev := s.time.UnixMilli() / msPerTick
	tick := cur.UnixMilli() / msPerTick
	if tick > prev {
		s.gen.AdvanceBy(big.NewInt(tick - prev))
	}

	for {
		tick++
		s.gen.Advance()
		if s.gen.Below(s.threshold) {
			break
		}
	}
	s.time = time.UnixMilli(tick * msPerTick).UTC()
}

// Next produces and commits the next ping of the schedule. Successive
// calls walk the infinite, strictly increasing ping sequence without ever
// consulting a clock.
func (s *Scheduler) Next() time.Time {
	s.AdvanceToNext(s.time)
	return s.time
}

// Time returns the last committed ping instant, or the start instant if
// nothing was produced yet.
func (s *Scheduler) Time() time.Time {
	return s.time
}

// Gap returns a copy of the average interval between pings, in seconds.
func (s *Scheduler) Gap() *big.Int {
	return new(big.Int).Set(s.gap)
}

// Clone returns an independent scheduler at the same position. Walking
// one does not disturb the other.
func (s *Scheduler) Clone() *Scheduler {
	return &Scheduler{
		time:      s.time,
		gap:       new(big.Int).Set(s.gap),
		gen:       s.gen.Clone(),
		threshold: new(big.Int).Set(s.threshold),
	}
}

// Snapshot is the complete persistable position of a scheduler. The five
// values determine every future ping; how they are stored is the caller's
// business. Instants are kept with millisecond resolution, which is exact
// for every committed ping.
type Snapshot struct {
	TimeMillis int64
	Gap        *big.Int
	Multiplier *big.Int
	Modulus    *big.Int
	State      *big.Int
}

// Snapshot captures the scheduler's position. All big integers are copies.
func (s *Scheduler) Snapshot() Snapshot {
	return Snapshot{
		TimeMillis: s.time.UnixMilli(),
		Gap:        s.Gap(),
		Multiplier: s.gen.Multiplier(),
		Modulus:    s.gen.Modulus(),
		State:      s.gen.State(),
	}
}

// FromSnapshot rebuilds the scheduler a Snapshot was taken from. It
// validates the gap exactly as New does. The generator fields must hold
// what a Snapshot call produced; a nil or non-positive modulus violates
// the lcg.New contract and panics.
func FromSnapshot(snap Snapshot) (*Scheduler, error) {
	return New(time.UnixMilli(snap.TimeMillis), Opts{
		Gap: snap.Gap,
		Gen: lcg.New(snap.Multiplier, snap.Modulus, snap.State),
	})
}
