package geometry

// Vector4 represents a 4-component vector, used for RGBA colors
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 creates a new 4-component vector
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector4) Mul(scalar float32) Vector4 {
	return Vector4{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
		W: v.W * scalar,
	}
}
