package fixedsig

import "errors"

// ErrUnknownSymbol indicates TermToNat was given a term that references a
// variable, constant, or (symbol, arity) function pair not present in the
// Signature it was built from.
var ErrUnknownSymbol = errors.New("fixedsig: symbol not present in signature")

// ErrEmptySignature indicates NatToTerm was asked to decode a natural
// number that falls outside the variable and constant bands, but the
// signature has no function symbols to fall back on (lv + lc == 0 and
// lf == 0 is the degenerate case of nothing at all to decode to).
var ErrEmptySignature = errors.New("fixedsig: signature has no function symbols to decode into")

// ErrNullaryFunSymbol indicates NewSignature was given a FunSym with
// Arity == 0. Nullary symbols belong in consts; admitting one into funs
// would make getBDigit's m unread for that digit, so every natural number
// selecting it would decode to the same term regardless of m.
var ErrNullaryFunSymbol = errors.New("fixedsig: function symbol has arity 0, use consts instead")
