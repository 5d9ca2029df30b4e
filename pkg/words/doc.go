/*
Package words layers natural-language plumbing over the markov package:
splitting corpus text into word tokens and sentences, feeding them to a
string model, and assembling generated words back into readable sentences.

The core model knows nothing about language. Everything here (word
splitting, sentence boundaries, joining, terminal punctuation,
capitalization) is policy, and all of it can be replaced by supplying a
custom Tokenizer.
*/
package words
