// Package isap implements the ISAP family of authenticated-encryption-
// with-associated-data schemes, as finalized for the NIST Lightweight
// Cryptography process: ISAP-A-128A, ISAP-A-128, ISAP-K-128A and
// ISAP-K-128.
//
// All four instances share one construction — session-key rederivation
// (Rk), keystream generation (Enc) and tag derivation (Mac) — layered on
// top of one of two permutations, Ascon-p or Keccak-p[400]. ISAP's
// defining property is that Rk absorbs its input one bit at a time,
// interleaved with a cheap permutation call, so that each permutation
// invocation during rekeying takes in only one new bit of that input
// on top of the key-dependent state; this is what makes the scheme
// differential-power-analysis resistant without a dedicated masking
// countermeasure.
//
// https://csrc.nist.gov/CSRC/media/Projects/lightweight-cryptography/documents/finalist-round/updated-spec-doc/isap-spec-final.pdf
package isap
