package domain

import "slices"

// ParkingKey is the personnel counter for the car park total.
const ParkingKey = "parking"

// Zones are the personnel counting zones, in display order.
var Zones = []string{
	"Zone 220", "Zone 230", "Zone 240", "Zone 250", "Zone 260", "Zone 440", "Zone 520",
}

// BikeCategories are the bike counting categories, in display order.
var BikeCategories = []string{
	"Kinderzitje", "Buitenformaat", "Op te hangen", "Op te laden",
	"Steps", "Standaardfietsen", "MPA", "MV", "6A",
}

// OfficeRooms are the rooms that carry an office supply log.
var OfficeRooms = []string{
	"20", "30", "40", "50", "140", "162", "170", "220", "250", "340", "422", "463",
}

// LimitedRooms expose only LimitedOfficeItems.
var LimitedRooms = []string{"20", "30", "40"}

// OfficeItems is the full item list, sorted naturally.
var OfficeItems = []string{
	"EK 1", "EK 2", "EK 3", "EK 4", "EK 5", "EK 6",
	"EK 7 A", "EK 7 B", "EK 7 C",
	"EK 8 A", "EK 8 B", "EK 8 C",
	"EK 9 A", "EK 9 B", "EK 9 C",
	"EK 10 A", "EK 10 B",
	"EK 11 A", "EK 11 B",
	"EK 12", "EK 13", "EK 14", "EK 15", "EK 16", "EK 17", "EK 18", "EK 19",
}

// LimitedOfficeItems is what a limited room exposes.
var LimitedOfficeItems = []string{"EK 13", "EK 14", "EK 15", "EK 16", "EK 17", "EK 18"}

// QuickAddSteps are the one-tap increments offered for personnel counters.
var QuickAddSteps = []int{5, 10, 20, 50}

// ItemRange is the inclusive range an office item accepts.
type ItemRange struct {
	Min  int
	Max  int
	Step int
}

// Contains reports whether n lies inside the range.
func (r ItemRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Choices returns the values an entry grid offers, excluding zero.
func (r ItemRange) Choices() []int {
	step := r.Step
	if step <= 0 {
		step = 1
	}
	var out []int
	for n := r.Min; n <= r.Max; n += step {
		if n == 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}

var (
	range01  = ItemRange{Min: 0, Max: 1, Step: 1}
	range05  = ItemRange{Min: 0, Max: 5, Step: 1}
	range010 = ItemRange{Min: 0, Max: 10, Step: 1}
	range020 = ItemRange{Min: 0, Max: 20, Step: 1}
	range100 = ItemRange{Min: 0, Max: 100, Step: 10}
)

var officeItemRanges = map[string]ItemRange{
	"EK 1": range05, "EK 2": range05,
	"EK 3": range010, "EK 4": range010,
	"EK 5": range100, "EK 6": range100,
	"EK 7 A": range020, "EK 7 B": range020, "EK 7 C": range020,
	"EK 8 A": range05, "EK 8 B": range05, "EK 8 C": range05,
	"EK 9 A": range05, "EK 9 B": range05, "EK 9 C": range05,
	"EK 10 A": range010, "EK 10 B": range020,
	"EK 11 A": range01, "EK 11 B": range01,
	"EK 12": range01, "EK 13": range01, "EK 14": range01, "EK 15": range01,
	"EK 16": range01, "EK 17": range01, "EK 18": range01, "EK 19": range01,
}

// RangeFor returns the declared range of an office item. Unknown items
// get the 0-5 range.
func RangeFor(item string) ItemRange {
	if r, ok := officeItemRanges[item]; ok {
		return r
	}
	return range05
}

// IsLimitedRoom reports whether room exposes only the limited item set.
func IsLimitedRoom(room string) bool {
	return slices.Contains(LimitedRooms, room)
}

// IsOfficeRoom reports whether room is in the catalog.
func IsOfficeRoom(room string) bool {
	return slices.Contains(OfficeRooms, room)
}

// ItemsForRoom returns the items a room exposes, in display order.
func ItemsForRoom(room string) []string {
	if IsLimitedRoom(room) {
		return LimitedOfficeItems
	}
	return OfficeItems
}

// RoomAllowsItem reports whether item is visible in room.
func RoomAllowsItem(room, item string) bool {
	return slices.Contains(ItemsForRoom(room), item)
}

// CategoriesFor returns the counter keys for a counting domain.
// Personnel includes the parking total after the zones.
func CategoriesFor(k Kind) []string {
	switch k {
	case KindPersonnel:
		return append(slices.Clone(Zones), ParkingKey)
	case KindBikes:
		return BikeCategories
	}
	return nil
}

// IsCategory reports whether key belongs to the counting domain k.
func IsCategory(k Kind, key string) bool {
	return slices.Contains(CategoriesFor(k), key)
}
