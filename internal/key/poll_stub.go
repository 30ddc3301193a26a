//go:build windows || plan9 || js || wasip1

package key

// pendingInput has no portable zero-timeout poll on these platforms; burst
// coalescing falls back to whatever bufio already buffered.
func (d *Decoder) pendingInput() bool {
	return false
}
