package gol

import "sync"

// Barrier is a reusable rendezvous point for a fixed number of goroutines.
// No caller of Wait returns until all parties have called Wait for the same round.
type Barrier struct {
	cond    *sync.Cond
	parties int
	waiting int  // Number of parties arrived in current round
	round   int  // Incremented every time the barrier trips
	broken  bool // Set once, releases every current and future waiter with an error
}

func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		panic("gol: barrier needs at least one party")
	}
	return &Barrier{
		cond:    sync.NewCond(new(sync.Mutex)),
		parties: parties,
	}
}

// Wait blocks until every party has arrived, then resets for the next round.
func (barrier *Barrier) Wait() error {
	barrier.cond.L.Lock()
	defer barrier.cond.L.Unlock()
	if barrier.broken {
		return ErrBrokenBarrier
	}
	round := barrier.round
	barrier.waiting++
	if barrier.waiting == barrier.parties {
		// Last party trips the barrier and wakes everyone waiting on this round
		barrier.waiting = 0
		barrier.round++
		barrier.cond.Broadcast()
		return nil
	}
	for round == barrier.round && !barrier.broken {
		barrier.cond.Wait()
	}
	if round == barrier.round {
		return ErrBrokenBarrier
	}
	return nil
}

// Break releases all waiters with ErrBrokenBarrier. Used when a party can no longer arrive.
func (barrier *Barrier) Break() {
	barrier.cond.L.Lock()
	barrier.broken = true
	barrier.cond.Broadcast()
	barrier.cond.L.Unlock()
}
