/*
Package markov provides an in-memory Markov chain model over token
sequences of any comparable type.

A Model is built by feeding it token sequences and queried by walking it:
each window of order consecutive tokens maps to the tokens observed to
follow it, and a walk repeatedly picks a successor of its current window at
random, weighted by how often each successor was observed. Sequence
boundaries are tracked with a dedicated stop marker rather than an
in-band value, so any token a caller can produce is safe to ingest.

Generation is lazy: a walk yields one token per Next call and can be
abandoned at any point without cost. Walks never mutate the model, so a
fully fed model can serve any number of concurrent walks.
*/
package markov
