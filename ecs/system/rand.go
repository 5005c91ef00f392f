package system

// Rand is the subset of *rand.Rand the systems draw from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
