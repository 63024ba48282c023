package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
)

// EmptyMark is the sentinel shown and stored for an unset office item.
const EmptyMark = "-"

// OfficeValue is either the empty sentinel or an integer count.
type OfficeValue struct {
	N     int
	Empty bool
}

// Empty is the unset office value.
var Empty = OfficeValue{Empty: true}

// Count returns a set office value.
func Count(n int) OfficeValue {
	return OfficeValue{N: n}
}

// ParseOfficeValue accepts "-" or a non-negative integer.
func ParseOfficeValue(s string) (OfficeValue, error) {
	if s == EmptyMark || s == "" {
		return Empty, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return OfficeValue{}, fmt.Errorf("office value %q: %w", s, ErrValueOutOfRange)
	}
	return Count(n), nil
}

func (v OfficeValue) String() string {
	if v.Empty {
		return EmptyMark
	}
	return strconv.Itoa(v.N)
}

// MarshalJSON encodes the sentinel as "-" and counts as numbers.
func (v OfficeValue) MarshalJSON() ([]byte, error) {
	if v.Empty {
		return json.Marshal(EmptyMark)
	}
	return json.Marshal(v.N)
}

// UnmarshalJSON accepts a number, "-" or a numeric string.
func (v *OfficeValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Count(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding office value: %w", err)
	}
	parsed, err := ParseOfficeValue(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Validate checks v against the declared range of item.
func (v OfficeValue) Validate(item string) error {
	if v.Empty {
		return nil
	}
	if r := RangeFor(item); !r.Contains(v.N) {
		return fmt.Errorf("%s accepts %d-%d, got %d: %w", item, r.Min, r.Max, v.N, ErrValueOutOfRange)
	}
	return nil
}

// OfficeMap maps room to item to value.
type OfficeMap map[string]map[string]OfficeValue

// Get returns the value for room/item. Absent and hidden items read as Empty.
func (m OfficeMap) Get(room, item string) OfficeValue {
	if !RoomAllowsItem(room, item) {
		return Empty
	}
	v, ok := m[room][item]
	if !ok {
		return Empty
	}
	return v
}

// Set writes room/item and reports whether anything was written. Items the
// room does not expose are ignored.
func (m OfficeMap) Set(room, item string, v OfficeValue) bool {
	if !RoomAllowsItem(room, item) {
		return false
	}
	items, ok := m[room]
	if !ok {
		items = make(map[string]OfficeValue)
		m[room] = items
	}
	items[item] = v
	return true
}

// Room returns a copy of the values recorded for room.
func (m OfficeMap) Room(room string) map[string]OfficeValue {
	out := make(map[string]OfficeValue, len(m[room]))
	maps.Copy(out, m[room])
	return out
}

// RoomHasData reports whether anything was recorded for room.
func (m OfficeMap) RoomHasData(room string) bool {
	return len(m[room]) > 0
}

// Clear removes every room.
func (m OfficeMap) Clear() {
	clear(m)
}

// Clone returns a deep copy.
func (m OfficeMap) Clone() OfficeMap {
	out := make(OfficeMap, len(m))
	for room := range m {
		out[room] = m.Room(room)
	}
	return out
}
