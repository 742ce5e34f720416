// Package hill implements the Hill cipher over the 26-letter Latin alphabet.
//
// A Hill key is an invertible n×n integer matrix K. Text is reduced to the
// letters A–Z, cut into blocks of n letters (the last block padded with X),
// and each block, read as a vector v of values 0..25, is replaced by K·v mod 26.
// Decryption applies K⁻¹, the modular inverse computed once at construction.
//
// The package provides:
//
//   - A block codec: Normalize, Split, Encode, Decode.
//   - Key generation by rejection sampling from crypto/rand (GenerateKey) and
//     reproducible derivation from a passphrase through SHAKE256 (DeriveKey).
//   - Cipher, an immutable engine built by New, NewFromRows, NewRandom or
//     NewFromPassphrase. Construction either yields a fully usable engine or an
//     error; a *Cipher is safe for concurrent use.
//
// The Hill cipher is a teaching cipher. It is linear, falls to a known
// plaintext attack with n blocks, and must not protect real secrets.
//
// Example:
//
//	c, err := hill.NewFromRows([][]int{{3, 3}, {2, 5}})
//	if err != nil {
//		// handle matrix.ErrNotInvertible, matrix.ErrInvalidShape, ...
//	}
//	ct, _ := c.Encrypt("help") // "HIAT"
//	pt, _ := c.Decrypt(ct)     // "HELP"
package hill
