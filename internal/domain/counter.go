package domain

import "maps"

// CounterMap maps a category key to a non-negative count. Absent keys read
// as zero.
type CounterMap map[string]int

// Get returns the count for key.
func (m CounterMap) Get(key string) int {
	return m[key]
}

// Increment adds delta to key, flooring at zero, and returns the new value.
// A negative delta decrements.
func (m CounterMap) Increment(key string, delta int) int {
	v := max(0, m[key]+delta)
	m[key] = v
	return v
}

// Set overwrites key. Negative values are stored as zero.
func (m CounterMap) Set(key string, value int) {
	m[key] = max(0, value)
}

// HasData reports whether any count is above zero.
func (m CounterMap) HasData() bool {
	for _, v := range m {
		if v > 0 {
			return true
		}
	}
	return false
}

// Total sums all counts.
func (m CounterMap) Total() int {
	var n int
	for _, v := range m {
		n += v
	}
	return n
}

// Clone returns an independent copy. A nil map clones to an empty one.
func (m CounterMap) Clone() CounterMap {
	out := make(CounterMap, len(m))
	maps.Copy(out, m)
	return out
}

// Clear removes every count.
func (m CounterMap) Clear() {
	clear(m)
}
