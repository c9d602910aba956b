package numbertheory

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNoFactorization is the single no-result signal for the whole package.
// It covers two distinct causes that are deliberately NOT distinguished:
//
//   - mathematically undefined: 0 has no prime decomposition, and the
//     gcd/lcm zero rules refuse mixed-zero operands
//   - indeterminate: the base was exhausted before the remainder was
//     provably reduced to 1, so the true factorization cannot be certified
//     without a larger base
//
// Callers must not read one meaning into the other; the returned signal is
// identical in both cases. Test with errors.Is.
var ErrNoFactorization = errors.New("no factorization")

// Factors is the prime-power decomposition of a positive integer: a mapping
// from prime to exponent. Every stored exponent is strictly positive - a
// prime with exponent 0 is represented by its absence. The empty mapping
// represents 1; there is no Factors value for 0.
//
// Exponents are uint8: the largest exponent representable in 64 bits is 63
// (for base 2), safely under 255.
//
// Factors values are immutable. Every combinator allocates and returns a
// new value; operands are never aliased or mutated. The zero value is the
// empty factorization. A Factors does not retain the base that built it -
// all algebra operates purely on the stored terms.
type Factors struct {
	m map[uint64]uint8
}

// Term is one prime-power entry of a factorization.
type Term struct {
	Prime uint64
	Exp   uint8
}

// Factor returns the factorization of n relative to the base.
//
// 0 has no factorization; 1 has the empty factorization. For n >= 2 the
// base's primes are divided out of the remainder in ascending order. Once a
// processed prime exceeds the remainder, any factor still hiding in it
// would have to be larger still, so the remainder is provably 1 and the
// factorization is certified complete. If the base is exhausted first, the
// remainder could be prime or a composite of primes beyond the base -
// unknowable without extending the base - and Factor returns
// ErrNoFactorization, the same signal as for 0.
func (p Primes) Factor(n uint64) (Factors, error) {
	switch n {
	case 0:
		return Factors{}, ErrNoFactorization
	case 1:
		return Factors{m: map[uint64]uint8{}}, nil
	}
	m := make(map[uint64]uint8)
	for _, prime := range p.ps {
		for n%prime == 0 {
			m[prime]++
			n /= prime
		}
		if prime > n {
			return Factors{m: m}, nil
		}
	}
	return Factors{}, ErrNoFactorization
}

// Mul returns the factorization of the product of the two represented
// integers: the exponent-wise sum over the union of both supports.
func (f Factors) Mul(other Factors) Factors {
	m := make(map[uint64]uint8, len(f.m)+len(other.m))
	for p, e := range f.m {
		m[p] = e
	}
	for p, e := range other.m {
		m[p] += e
	}
	return Factors{m: m}
}

// Union returns the factorization of the least common multiple of the two
// represented integers: the exponent-wise maximum over both supports.
func (f Factors) Union(other Factors) Factors {
	m := make(map[uint64]uint8, len(f.m)+len(other.m))
	for p, e := range f.m {
		m[p] = e
	}
	for p, e := range other.m {
		if e > m[p] {
			m[p] = e
		}
	}
	return Factors{m: m}
}

// Intersection returns the factorization of the greatest common divisor of
// the two represented integers: the exponent-wise minimum, restricted to
// primes present on both sides. A prime absent from either side contributes
// exponent 0 and is omitted, preserving the positive-exponent invariant.
func (f Factors) Intersection(other Factors) Factors {
	m := make(map[uint64]uint8)
	for p, e := range f.m {
		if oe, ok := other.m[p]; ok {
			m[p] = min(e, oe)
		}
	}
	return Factors{m: m}
}

// IsSubset reports whether f's exponent is <= other's exponent for every
// prime in f's support, reading absent entries as 0. Equivalent to: the
// integer represented by f divides the integer represented by other.
func (f Factors) IsSubset(other Factors) bool {
	for p, e := range f.m {
		if other.m[p] < e {
			return false
		}
	}
	return true
}

// IsSuperset reports whether other is a subset of f: other's integer
// divides f's integer.
func (f Factors) IsSuperset(other Factors) bool {
	return other.IsSubset(f)
}

// Exponent returns the exponent stored for p, or 0 if p is not part of the
// factorization.
func (f Factors) Exponent(p uint64) uint8 {
	return f.m[p]
}

// IsEmpty reports whether the factorization has no terms, i.e. represents 1.
func (f Factors) IsEmpty() bool {
	return len(f.m) == 0
}

// Len returns the number of distinct primes in the factorization.
func (f Factors) Len() int {
	return len(f.m)
}

// Terms returns the factorization as prime-power terms in ascending prime
// order. The slice is freshly allocated on every call.
func (f Factors) Terms() []Term {
	terms := make([]Term, 0, len(f.m))
	for p, e := range f.m {
		terms = append(terms, Term{Prime: p, Exp: e})
	}
	slices.SortFunc(terms, func(a, b Term) int {
		return cmp.Compare(a.Prime, b.Prime)
	})
	return terms
}

// Equal reports whether the two factorizations have identical terms.
func (f Factors) Equal(other Factors) bool {
	if len(f.m) != len(other.m) {
		return false
	}
	for p, e := range f.m {
		if other.m[p] != e {
			return false
		}
	}
	return true
}

// Totient returns Euler's totient of the represented integer: the product
// over every term of p^e - p^(e-1).
//
// By convention the empty factorization yields 0, not the mathematical
// phi(1) = 1. This is deliberate, documented behavior.
func (f Factors) Totient() uint64 {
	if f.IsEmpty() {
		return 0
	}
	totient := uint64(1)
	for p, e := range f.m {
		totient *= pow(p, e) - pow(p, e-1)
	}
	return totient
}

// DivisorCount returns the number of divisors of the represented integer:
// the product over every term of e + 1. The empty factorization yields 1,
// since 1 has exactly one divisor.
func (f Factors) DivisorCount() uint64 {
	count := uint64(1)
	for _, e := range f.m {
		count *= uint64(e) + 1
	}
	return count
}

// Uint64 reconstructs the represented integer: the product of p^e over
// every term. The empty factorization yields 1 via the empty product.
// Products are not bounds-checked beyond natural 64-bit wraparound.
func (f Factors) Uint64() uint64 {
	n := uint64(1)
	for p, e := range f.m {
		n *= pow(p, e)
	}
	return n
}

// String renders the factorization as ascending prime powers, e.g.
// "2^3 * 3" for 24. The empty factorization renders as "1".
func (f Factors) String() string {
	if f.IsEmpty() {
		return "1"
	}
	var b strings.Builder
	for i, t := range f.Terms() {
		if i > 0 {
			b.WriteString(" * ")
		}
		if t.Exp == 1 {
			fmt.Fprintf(&b, "%d", t.Prime)
		} else {
			fmt.Fprintf(&b, "%d^%d", t.Prime, t.Exp)
		}
	}
	return b.String()
}

// pow returns base**exp with natural uint64 wraparound on overflow.
func pow(base uint64, exp uint8) uint64 {
	n := uint64(1)
	for ; exp > 0; exp-- {
		n *= base
	}
	return n
}
