// Package catalan ranks and unranks balanced-parenthesis words (Catalan
// skeletons) against the natural numbers, following the algorithm in
// Kreher & Stinson, Combinatorial Algorithms: Generation, Enumeration, and
// Search.
//
// A Pars value of length 2(i+1) represents a balanced parenthesis word with
// i+1 opening parentheses. Rank and Unrank range over the words whose
// opening '(' at index 0 is closed only at the last index, the shape of a
// term skeleton: '(' + w + ')' with w balanced of length 2i, so there are
// Catalan(i) such words of that length. They are ordered so that shorter
// words always rank below longer ones, and words of the same length are
// ordered by the recursive descent the Kreher & Stinson algorithm walks.
// Unrank never produces any other balanced word, such as "()()".
//
// The helper function at the core of both directions, M(n, x, y), counts
// balanced suffixes of length 2n-x that start in "excess-y" state; it is
// expressed purely in terms of combin.Binomial, so this package's only
// numeric dependency is combin (and, transitively, bignat).
//
// Complexity: both Rank and Unrank run in O(len(pars)) big-integer
// binomial evaluations, i.e. O(i) for a word with i+1 opening parens; each
// binomial evaluation is itself O(i) per combin.Binomial, for an overall
// O(i^2) per call. Catalan-number lookups are amortized O(1) once a
// combin.Table has seen the relevant range.
//
// Errors:
//
//	ErrMalformedPars - Rank was given a Pars that is not a balanced word.
package catalan
