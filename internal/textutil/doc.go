// Package textutil implements the text analysis core: tokenization, descriptive
// statistics, and vocabulary-overlap similarity.
//
// The primary entry points are:
//   - Analyze, which reports character, word, and sentence counts together with
//     the most frequent and the longest word of a text
//   - Similarity, which scores two texts by shared vocabulary on a 0-100 scale
//
// Tokenization splits on the ASCII space only. Statistics keep the empty tokens
// produced by adjacent or boundary spaces, while similarity scoring discards
// them. Punctuation stripping removes every Unicode punctuation rune except the
// period, so sentence structure survives in character counts and word lengths.
//
// All functions are pure and safe for concurrent use; nothing is cached between
// calls.
package textutil
