// Package numbertheory sieves prime bases and factorizes integers against
// them, deriving gcd, lcm, Euler's totient, and divisor counts from set-like
// operations over the resulting exponent maps.
//
// # Prime bases
//
// A Primes value is an ordered, gap-free run of primes starting at 2: always
// exactly "the first K primes" for some K >= 0. Bases are built once, by
// bound (Under) or by count (FirstN), with a deliberately naive
// trial-division sieve, then consulted read-only. FromRawSlice bypasses
// validation entirely and exists solely for constructing known-good test
// fixtures; see its documentation for the trust contract.
//
// # Factorizations
//
// A Factors value maps prime to positive exponent and represents one
// positive integer's unique decomposition relative to a base. The empty
// factorization represents 1; zero has no factorization. Once built, a
// Factors value never refers back to the base: all algebra (Mul, Union,
// Intersection, IsSubset, Totient, DivisorCount, Uint64) operates purely on
// the stored terms. Union is exponent-wise max and corresponds to lcm;
// Intersection is exponent-wise min over shared primes and corresponds to
// gcd; IsSubset is exponent-wise <= and corresponds to divisibility.
//
// # Certification
//
// Factor walks the base's primes in ascending order, dividing each out of
// the remainder. After processing prime p, any factor still hiding in the
// remainder must exceed p, so p > remainder proves the remainder is 1 and
// certifies the factorization. If the base runs out first, the remainder
// could be prime or could be a composite of primes beyond the base: the
// result is indeterminate and Factor reports ErrNoFactorization, the same
// signal used for 0. The two causes are intentionally not distinguished.
//
// # Concurrency
//
// Every operation is a pure, terminating computation over immutable values.
// Combinators allocate and return new values instead of mutating inputs, and
// accessors hand out copies, so Primes and Factors values are safe to share
// across goroutines without synchronization.
package numbertheory
