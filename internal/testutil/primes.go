// Package testutil provides deterministic fixtures for tests.
//
// The known-prime table is hard-coded rather than computed so that sieve
// tests compare against an independent source of truth instead of the code
// under test. The package imports nothing from the module root, which keeps
// the root package's in-package tests free of import cycles.
package testutil

// knownPrimes is the first 100 primes, by the book.
var knownPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
	233, 239, 241, 251, 257, 263, 269, 271, 277, 281,
	283, 293, 307, 311, 313, 317, 331, 337, 347, 349,
	353, 359, 367, 373, 379, 383, 389, 397, 401, 409,
	419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541,
}

// KnownPrimes returns a copy of the first n primes from the table.
// It panics if n is negative or exceeds the table (100 entries); this is a
// test-only helper and a bad n is a bug in the test.
func KnownPrimes(n int) []uint64 {
	if n < 0 || n > len(knownPrimes) {
		panic("testutil: KnownPrimes: n outside the known-prime table")
	}
	out := make([]uint64, n)
	copy(out, knownPrimes[:n])
	return out
}

// PrimesUnder returns a copy of every table prime strictly below limit.
// It panics if limit exceeds the table's reach (largest entry 541), since
// the table could no longer answer authoritatively.
func PrimesUnder(limit uint64) []uint64 {
	if limit > knownPrimes[len(knownPrimes)-1]+1 {
		panic("testutil: PrimesUnder: limit beyond the known-prime table")
	}
	var out []uint64
	for _, p := range knownPrimes {
		if p >= limit {
			break
		}
		out = append(out, p)
	}
	return out
}
