//go:build !noasm && arm64

package isa

// sveVectorBytes executes RDVL; the caller must have checked for SVE.
func sveVectorBytes() int
