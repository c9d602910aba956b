package numbertheory

import "slices"

// Primes is an ordered prime base: strictly increasing, starting at 2 if
// non-empty, with no gaps relative to the true prime sequence. Valid bases
// are [], [2 3 5], and [2 3 5 7 11] - but never [2 5 11].
//
// A base is immutable once constructed. Accessors return copies, so a base
// can be shared by read-only reference across goroutines without
// synchronization.
type Primes struct {
	ps []uint64
}

// Under returns the base of primes found by trial division below limit.
// For limit < 2 the base is empty. This is not an efficient implementation.
func Under(limit uint64) Primes {
	if limit < 2 {
		return Primes{}
	}
	ps := []uint64{2}
	for n := uint64(3); n < limit; n += 2 {
		if dividesNone(ps, n) {
			ps = append(ps, n)
		}
	}
	return Primes{ps: ps}
}

// FirstN returns the base of the smallest n primes, regardless of their
// magnitude. For n <= 0 the base is empty. This is not an efficient
// implementation.
func FirstN(n int) Primes {
	if n <= 0 {
		return Primes{}
	}
	ps := make([]uint64, 1, n)
	ps[0] = 2
	for m := uint64(3); len(ps) < n; m += 2 {
		if dividesNone(ps, m) {
			ps = append(ps, m)
		}
	}
	return Primes{ps: ps}
}

// dividesNone reports whether no prime in ps divides n.
func dividesNone(ps []uint64, n uint64) bool {
	for _, p := range ps {
		if n%p == 0 {
			return false
		}
	}
	return true
}

// FromRawSlice wraps ps as a prime base without checking primality,
// ordering, or gap-freedom. The input is copied, so the caller keeps no
// handle into the base, but nothing is validated: supplying anything other
// than the first K primes in ascending order silently violates the base
// invariant, and every downstream factorization, gcd, and lcm result
// becomes unreliable. No error is raised now or later.
//
// This is an escape hatch for building known-good test fixtures cheaply.
// Never call it with unchecked external input.
func FromRawSlice(ps []uint64) Primes {
	return Primes{ps: slices.Clone(ps)}
}

// Max returns the largest prime in the base. The second return is false
// for the empty base.
func (p Primes) Max() (uint64, bool) {
	if len(p.ps) == 0 {
		return 0, false
	}
	return p.ps[len(p.ps)-1], true
}

// Len returns the number of primes in the base.
func (p Primes) Len() int {
	return len(p.ps)
}

// Slice returns a copy of the base in ascending order.
func (p Primes) Slice() []uint64 {
	return slices.Clone(p.ps)
}
