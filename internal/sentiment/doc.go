// Package sentiment scores the polarity and subjectivity of free text.
//
// Scoring is lexicon based. Every known adjective or adverb carries a
// polarity in [-1, 1], a subjectivity in [0, 1] and an intensity. Adverbs
// with an intensity other than 1 ("very", "slightly") scale the next known
// word, and a negation ("not", "never", "no" or a contraction ending in
// "n't") flips the next known word and halves it, so "not good" reads as
// mildly negative. Emoticons are scored as fully subjective.
//
// The text's score is the mean over all matched words and emoticons. Text
// without any match scores (0, 0): neutral and completely objective.
//
// Scores are a pure function of the text; nothing is cached.
package sentiment
