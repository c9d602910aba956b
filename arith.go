package numbertheory

// GCD returns the greatest common divisor of m and n: the largest d such
// that d divides both. An operand of 0 yields ErrNoFactorization. An
// operand of 1 short-circuits to 1 without factorizing the other operand.
// Otherwise both operands are factorized against the base - failing if
// either factorization is indeterminate - and the result is rebuilt from
// the intersection.
func (p Primes) GCD(m, n uint64) (uint64, error) {
	switch {
	case m == 0 || n == 0:
		return 0, ErrNoFactorization
	case m == 1 || n == 1:
		return 1, nil
	}
	mf, err := p.Factor(m)
	if err != nil {
		return 0, err
	}
	nf, err := p.Factor(n)
	if err != nil {
		return 0, err
	}
	return mf.Intersection(nf).Uint64(), nil
}

// LCM returns the least common multiple of m and n: the smallest q that
// both m and n divide. LCM(0, 0) is 0 by convention; exactly one zero
// operand yields ErrNoFactorization. An operand of 1 short-circuits to the
// other operand unchanged. Otherwise both operands are factorized against
// the base - failing if either factorization is indeterminate - and the
// result is rebuilt from the union.
func (p Primes) LCM(m, n uint64) (uint64, error) {
	switch {
	case m == 0 && n == 0:
		return 0, nil
	case m == 0 || n == 0:
		return 0, ErrNoFactorization
	case m == 1:
		return n, nil
	case n == 1:
		return m, nil
	}
	mf, err := p.Factor(m)
	if err != nil {
		return 0, err
	}
	nf, err := p.Factor(n)
	if err != nil {
		return 0, err
	}
	return mf.Union(nf).Uint64(), nil
}
