// Package trie stores words over a small declared alphabet (at most 26
// symbols) and answers word-break queries against them.
//
// Nodes live in one flat arena; each node owns a fixed run of K child slots,
// K the alphabet size, indexed by the symbol's position in the alphabet.
//
// Queries:
//
//   - PrefixesOf(s): lengths k, increasing, such that s[:k] is a stored word.
//   - CanDecompose(s): whether s is a concatenation of stored words,
//     by a forward reachability DP with early exit.
//   - CountDecompositions(s): the number of such concatenations, by the same
//     DP accumulating counts. CountDecompositions(s) > 0 exactly when
//     CanDecompose(s).
//
// Both DPs cost O(|s|·P), P the most stored prefixes at any position.
// A query symbol outside the alphabet ends the prefix walk; only Insert
// rejects such symbols.
package trie
