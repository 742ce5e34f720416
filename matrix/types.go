// SPDX-License-Identifier: MIT

// Package matrix: shared constants used by kernels and validators.
package matrix

// MinModulus is the smallest modulus for which Z_m has a unit other than 0.
const MinModulus = 2

// MaxModulus is the largest modulus the modular kernels accept. Residues stay
// below 2^31, so a product of two residues plus an accumulator fits in a
// 64-bit int.
const MaxModulus = 1<<31 - 1

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewDense    = "NewDense"
	opFromRows    = "FromRows"
	opParseJSON   = "ParseJSON"
	opUnmarshal   = "UnmarshalJSON"
	opIdentity    = "Identity"
	opDeterminant = "Determinant"
	opDetMod      = "DetMod"
	opInvertible  = "IsInvertible"
	opModInverse  = "ModInverse"
	opMinor       = "Minor"
	opCofactors   = "CofactorsMod"
	opAdjugate    = "AdjugateMod"
	opInverseMod  = "InverseMod"
	opMulMod      = "MulMod"
	opMatVecMod   = "MatVecMod"
	opTranspose   = "Transpose"
	opReduce      = "Reduce"
)
