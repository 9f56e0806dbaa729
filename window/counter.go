// SPDX-License-Identifier: MIT

package window

// counter tracks symbol frequencies inside the window and how many symbols
// currently have a positive frequency.
type counter[T comparable] struct {
	freq     map[T]int
	distinct int
}

func newCounter[T comparable]() *counter[T] {
	return &counter[T]{freq: make(map[T]int)}
}

// add records one more occurrence of sym entering the window.
func (c *counter[T]) add(sym T) {
	c.freq[sym]++
	if c.freq[sym] == 1 {
		c.distinct++
	}
}

// remove records one occurrence of sym leaving the window. Symbols whose
// frequency drops to zero are deleted so the map never outgrows the window.
func (c *counter[T]) remove(sym T) {
	c.freq[sym]--
	if c.freq[sym] == 0 {
		delete(c.freq, sym)
		c.distinct--
	}
}

func (c *counter[T]) count(sym T) int {
	return c.freq[sym]
}
