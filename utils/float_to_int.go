package utils

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// AppendFloat32ToInt16 converts src in bulk and appends to dst,
// clamping each sample like Float32ToInt16.
func AppendFloat32ToInt16(dst []int16, src []float32) []int16 {
	for _, x := range src {
		dst = append(dst, Float32ToInt16(x))
	}
	return dst
}
