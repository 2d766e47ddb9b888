/*
Package ping derives the universal ping schedule from the shared tick
generator.

Time is cut into ticks of 100 milliseconds, counted from the Unix epoch.
The generator walks one step per tick, and a tick is a ping when the state
after its step falls below a threshold chosen so that pings arrive, on
average, once per the configured gap. The schedule is a pure function of
(multiplier, modulus, seed, gap): every computer on Earth that evaluates it
gets the very same ping instants, past and future.

Scheduler walks the schedule lazily. It never sleeps and never looks at the
wall clock on its own: the caller feeds it instants and gets back the next
ping at or after each. Because the generator jumps over idle stretches in
logarithmic time, waking up after a month costs about as much as waking up
after a minute.

Scheduler is a plain value machine and needs external synchronization to be
shared between goroutines.
*/
package ping
