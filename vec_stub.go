//go:build !linux

package ringbuf

// FillFrom needs readv(2) and is only implemented on Linux.
// It always returns ErrVectorIO here.
func FillFrom(fd int, r *Ring[byte]) (int, error) {
	return 0, ErrVectorIO
}

// DrainTo needs writev(2) and is only implemented on Linux.
// It always returns ErrVectorIO here.
func DrainTo(fd int, r *Ring[byte]) (int, error) {
	return 0, ErrVectorIO
}
