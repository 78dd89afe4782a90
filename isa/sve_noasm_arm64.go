//go:build noasm && arm64

package isa

// RDVL needs assembly; report an unknown width.
func sveVectorBytes() int {
	return 0
}
