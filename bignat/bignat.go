package bignat

import (
	"fmt"
	"math/big"
)

// BigNat is an immutable, non-negative arbitrary-precision integer.
// The zero value of BigNat is the natural number 0 and is ready to use.
type BigNat struct {
	v *big.Int // nil means 0; never holds a negative value
}

var bigZero = big.NewInt(0)

// Zero returns the BigNat 0.
func Zero() BigNat { return BigNat{} }

// One returns the BigNat 1.
func One() BigNat { return FromUint64(1) }

// FromUint64 returns the BigNat equal to n.
func FromUint64(n uint64) BigNat {
	if n == 0 {
		return BigNat{}
	}
	return BigNat{v: new(big.Int).SetUint64(n)}
}

// FromInt returns the BigNat equal to n.
// It returns ErrNegative if n is negative.
func FromInt(n int) (BigNat, error) {
	if n < 0 {
		return BigNat{}, fmt.Errorf("bignat: FromInt(%d): %w", n, ErrNegative)
	}
	return FromUint64(uint64(n)), nil
}

// FromInt64 returns the BigNat equal to n.
// It returns ErrNegative if n is negative.
func FromInt64(n int64) (BigNat, error) {
	if n < 0 {
		return BigNat{}, fmt.Errorf("bignat: FromInt64(%d): %w", n, ErrNegative)
	}
	return FromUint64(uint64(n)), nil
}

// FromBigInt copies v into a BigNat. It returns ErrNegative if v is negative.
// The returned BigNat never aliases v, so the caller may keep mutating v.
func FromBigInt(v *big.Int) (BigNat, error) {
	if v.Sign() < 0 {
		return BigNat{}, fmt.Errorf("bignat: FromBigInt(%s): %w", v.String(), ErrNegative)
	}
	if v.Sign() == 0 {
		return BigNat{}, nil
	}
	return BigNat{v: new(big.Int).Set(v)}, nil
}

// FromString parses s as a base-10 non-negative integer.
func FromString(s string) (BigNat, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigNat{}, fmt.Errorf("bignat: FromString(%q): %w", s, ErrSyntax)
	}
	return FromBigInt(v)
}

// big returns a non-nil *big.Int view of n without allocating for the zero
// value. Callers must never mutate the result.
func (n BigNat) big() *big.Int {
	if n.v == nil {
		return bigZero
	}
	return n.v
}

// BigInt returns n's value as a freshly allocated *big.Int that the caller
// is free to mutate.
func (n BigNat) BigInt() *big.Int {
	return new(big.Int).Set(n.big())
}

// Uint64 returns n as a uint64. Behavior is undefined (per math/big) if n
// does not fit; callers that care should guard with IsUint64.
func (n BigNat) Uint64() uint64 { return n.big().Uint64() }

// IsUint64 reports whether n's value fits in a uint64.
func (n BigNat) IsUint64() bool { return n.big().IsUint64() }

// Int returns n truncated to a platform int. Behavior is undefined if n
// does not fit; callers that care should guard with BitLen.
func (n BigNat) Int() int { return int(n.big().Int64()) }

// IsZero reports whether n is 0.
func (n BigNat) IsZero() bool { return n.v == nil || n.v.Sign() == 0 }

// IsOne reports whether n is 1.
func (n BigNat) IsOne() bool { return n.big().Cmp(bigOne) == 0 }

var bigOne = big.NewInt(1)

// Cmp compares n and m, returning -1, 0, or +1 as n is less than, equal to,
// or greater than m.
func (n BigNat) Cmp(m BigNat) int { return n.big().Cmp(m.big()) }

// Less reports whether n < m.
func (n BigNat) Less(m BigNat) bool { return n.Cmp(m) < 0 }

// LessEq reports whether n <= m.
func (n BigNat) LessEq(m BigNat) bool { return n.Cmp(m) <= 0 }

// Greater reports whether n > m.
func (n BigNat) Greater(m BigNat) bool { return n.Cmp(m) > 0 }

// GreaterEq reports whether n >= m.
func (n BigNat) GreaterEq(m BigNat) bool { return n.Cmp(m) >= 0 }

// Equal reports whether n == m.
func (n BigNat) Equal(m BigNat) bool { return n.Cmp(m) == 0 }

// Add returns n + m.
func (n BigNat) Add(m BigNat) BigNat {
	if n.IsZero() {
		return m
	}
	if m.IsZero() {
		return n
	}
	return BigNat{v: new(big.Int).Add(n.big(), m.big())}
}

// Sub returns n - m.
//
// It panics if m > n. Every call site inside this module establishes
// n >= m before subtracting (the combinatorial identities in combin and
// catalan are exact by construction); a negative result reaching here means
// a programmer error upstream, not a condition a caller's natural-number
// input can trigger on its own, so this follows the same panic-on-invariant-
// violation convention as the teacher's private helpers.
func (n BigNat) Sub(m BigNat) BigNat {
	if n.Less(m) {
		panic(fmt.Sprintf("bignat: Sub(%s, %s): negative result", n, m))
	}
	if m.IsZero() {
		return n
	}
	return BigNat{v: new(big.Int).Sub(n.big(), m.big())}
}

// Mul returns n * m.
func (n BigNat) Mul(m BigNat) BigNat {
	if n.IsZero() || m.IsZero() {
		return Zero()
	}
	return BigNat{v: new(big.Int).Mul(n.big(), m.big())}
}

// QuoExact returns n / m. It panics if m is zero or the division leaves a
// remainder: binomial's running product and Catalan's recurrence are exact
// by construction, so an inexact result reaching here means the caller
// built the dividend incorrectly.
func (n BigNat) QuoExact(m BigNat) BigNat {
	if m.IsZero() {
		panic("bignat: QuoExact: division by zero")
	}
	q, r := new(big.Int).QuoRem(n.big(), m.big(), new(big.Int))
	if r.Sign() != 0 {
		panic(fmt.Sprintf("bignat: QuoExact(%s, %s): not exact, remainder %s", n, m, r))
	}
	return BigNat{v: q}
}

// QuoRem returns the quotient and remainder of truncated division n / m.
// It panics if m is zero.
func (n BigNat) QuoRem(m BigNat) (q, r BigNat) {
	if m.IsZero() {
		panic("bignat: QuoRem: division by zero")
	}
	qq, rr := new(big.Int).QuoRem(n.big(), m.big(), new(big.Int))
	q, _ = FromBigInt(qq)
	r, _ = FromBigInt(rr)
	return q, r
}

// Inc returns n + 1.
func (n BigNat) Inc() BigNat { return n.Add(One()) }

// Dec returns n - 1. It panics if n is 0, per Sub.
func (n BigNat) Dec() BigNat { return n.Sub(One()) }

// BitLen returns the number of bits required to represent n; 0 for n == 0.
func (n BigNat) BitLen() int { return n.big().BitLen() }

// String renders n in base 10.
func (n BigNat) String() string { return n.big().String() }

// Max returns the larger of a and b.
func Max(a, b BigNat) BigNat {
	if a.Less(b) {
		return b
	}
	return a
}

// Min returns the smaller of a and b.
func Min(a, b BigNat) BigNat {
	if a.Less(b) {
		return a
	}
	return b
}
