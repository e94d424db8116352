package catalan

import "errors"

// ErrMalformedPars indicates Rank was given a byte sequence that is not a
// balanced parenthesis word: it contains a byte other than 0 or 1, some
// prefix has more closing than opening parens, or the total counts differ.
var ErrMalformedPars = errors.New("catalan: not a balanced parenthesis word")
