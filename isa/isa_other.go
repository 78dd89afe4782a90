//go:build !amd64 && !arm64

package isa

func detectFeatures(levels *[numLevels]bool) {
	// Other architectures only run the scalar kernels.
}

// SVEVectorBytes returns 0 on architectures without SVE.
func SVEVectorBytes() int {
	return 0
}
