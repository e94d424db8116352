package skeleton

import "errors"

// ErrMalformedPair indicates Join was given a (skeleton, syms) pair that is
// inconsistent with the split/join grammar: a skeleton prefix that is
// neither a leaf (0,1) nor the start of a non-leaf application, an
// unmatched closing paren, a sym stream that runs out early, or streams
// that fail to exhaust together.
var ErrMalformedPair = errors.New("skeleton: malformed (skeleton, syms) pair")
