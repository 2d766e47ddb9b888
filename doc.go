/*
Package tagtime - deterministic universal ping schedule.

https://forum.beeminder.com/t/possible-new-tagtime-universal-ping-algorithm/4143

TagTime samples your life at unpredictable instants called pings. For the
samples to be honest the pings must be unpredictable, yet everyone using
the method should agree on them: two people comparing logs, or one person
re-running the computation years later, must land on exactly the same
instants. That rules out real randomness and asks for a deterministic
schedule that merely looks random.

This implementation cuts time into ticks of 100 milliseconds counted from
the Unix epoch and drives a multiplicative congruential generator one step
per tick. A tick is a ping when the generator's state falls below a
threshold chosen so pings arrive on average once per the configured gap.
Because the generator is purely multiplicative, its state after k steps is
a single modular exponentiation away, so the schedule never replays
history: waking up after a month costs the same as waking up after a
minute.

Guarantees

- universal: the same parameters produce the same pings on every machine,
past and future,

- path independent: any mix of single steps and jumps that lands on a tick
yields the same state, hence the same schedule,

- nested: shortening the gap only adds pings, it never moves or removes
the ones a longer gap already had,

- lazy: the scheduler does nothing between calls and never consults the
wall clock on its own.

Structure

- root package is empty

- the tick generator is in lcg subpackage

- the schedule is in ping subpackage

- internal/config and internal/logging serve the command line driver in
bin/tagtime

Usage

ping.FromMillis (or ping.New with Opts) positions a Scheduler at a start
instant. Scheduler.Next produces and commits pings one by one;
Scheduler.AdvanceToNext(cur) resynchronizes after idleness by committing
the first ping after cur's tick. Snapshot/FromSnapshot roundtrip the whole
position for persistence, and Clone forks an independent walker for
lookahead.
*/
package tagtime
