//go:build !windows && !plan9 && !js && !wasip1

package key

import "golang.org/x/sys/unix"

// pendingInput polls the input descriptor with a zero timeout so burst
// coalescing never blocks waiting for a byte that may not come.
func (d *Decoder) pendingInput() bool {
	if d.fd < 0 {
		return false
	}
	var readfds unix.FdSet
	fdSetAdd(&readfds, d.fd)
	tv := unix.Timeval{}
	n, err := unix.Select(d.fd+1, &readfds, nil, nil, &tv)
	if err != nil {
		return false
	}
	return n > 0 && fdSetHas(&readfds, d.fd)
}

func fdSetAdd(set *unix.FdSet, fd int) {
	if fd < 0 {
		return
	}
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}

func fdSetHas(set *unix.FdSet, fd int) bool {
	if fd < 0 {
		return false
	}
	return set.Bits[fd/64]&(1<<(uint(fd)%64)) != 0
}
