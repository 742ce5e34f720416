// Package matrix provides exact integer matrices and the modular linear
// algebra needed by block substitution ciphers.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c matrix of int with bounds-checked At/Set,
//     deep Clone and JSON (array of arrays) encoding.
//   - Validators for shape, square-ness, vector length and modulus.
//   - Modular scalar helpers: GCD, Mod and ModInverse (extended Euclid).
//   - Exact determinants (fraction-free Bareiss elimination over big.Int),
//     invertibility tests over Z_m, minors, cofactors, the adjugate and the
//     full modular inverse.
//   - Modular kernels MulMod and MatVecMod.
//
// No floating point is used anywhere: a float determinant rounded back to an
// integer silently drifts once n reaches 4 or so, which is fatal for key
// material that must round-trip exactly.
//
// All kernels are pure. They never mutate their inputs and return fresh
// matrices, so values may be shared between goroutines once built.
package matrix
