//go:build linux

package ringbuf

import "golang.org/x/sys/unix"

// vector packs the non-empty spans into an iovec-shaped slice.
func vector(first, last []byte) [][]byte {
	iov := make([][]byte, 0, 2)
	if len(first) > 0 {
		iov = append(iov, first)
	}
	if len(last) > 0 {
		iov = append(iov, last)
	}
	return iov
}

// FillFrom reads from 'fd' directly into the free spans of 'r' with a
// single readv call and commits however many bytes arrived. No
// intermediate copy is made.
// Returns (0, nil) without touching the descriptor when the ring is
// full, and (0, nil) on end of file.
func FillFrom(fd int, r *Ring[byte]) (int, error) {
	first, last := r.Avail()
	iov := vector(first, last)
	if len(iov) == 0 {
		return 0, nil
	}
	n, err := unix.Readv(fd, iov)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.Commit(n)
	}
	return n, nil
}

// DrainTo writes the occupied spans of 'r' to 'fd' with a single writev
// call and discards however many bytes the kernel accepted, oldest
// first. No intermediate copy is made.
// Returns (0, nil) without touching the descriptor when the ring is
// empty.
func DrainTo(fd int, r *Ring[byte]) (int, error) {
	first, last := r.Used()
	iov := vector(first, last)
	if len(iov) == 0 {
		return 0, nil
	}
	n, err := unix.Writev(fd, iov)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.Discard(n)
	}
	return n, nil
}
