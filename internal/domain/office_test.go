package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfficeMap_LimitedRoomHidesItems(t *testing.T) {
	m := OfficeMap{}

	assert.False(t, m.Set("20", "EK 1", Count(3)))
	assert.Empty(t, m, "hidden item must not create the room")
	assert.Equal(t, Empty, m.Get("20", "EK 1"))

	assert.True(t, m.Set("20", "EK 13", Count(1)))
	assert.Equal(t, Count(1), m.Get("20", "EK 13"))
}

func TestOfficeMap_FullRoomExposesEverything(t *testing.T) {
	m := OfficeMap{}
	for _, item := range OfficeItems {
		require.True(t, m.Set("140", item, Count(0)), item)
	}
	assert.Len(t, m.Room("140"), len(OfficeItems))
}

func TestOfficeMap_GetAbsentIsEmpty(t *testing.T) {
	m := OfficeMap{}
	assert.Equal(t, Empty, m.Get("50", "EK 5"))
	assert.Equal(t, EmptyMark, m.Get("50", "EK 5").String())
	assert.False(t, m.RoomHasData("50"))
}

func TestOfficeMap_CloneIsDeep(t *testing.T) {
	m := OfficeMap{}
	m.Set("50", "EK 5", Count(40))
	c := m.Clone()
	c.Set("50", "EK 5", Count(60))
	assert.Equal(t, Count(40), m.Get("50", "EK 5"))
}

func TestOfficeValue_JSON(t *testing.T) {
	items := map[string]OfficeValue{"EK 1": Count(2), "EK 2": Empty}
	data, err := json.Marshal(items)
	require.NoError(t, err)
	assert.JSONEq(t, `{"EK 1": 2, "EK 2": "-"}`, string(data))

	var back map[string]OfficeValue
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, items, back)

	var v OfficeValue
	require.NoError(t, json.Unmarshal([]byte(`"7"`), &v))
	assert.Equal(t, Count(7), v)
	assert.Error(t, json.Unmarshal([]byte(`{}`), &v))
}

func TestOfficeValue_Validate(t *testing.T) {
	assert.NoError(t, Count(5).Validate("EK 1"))
	assert.ErrorIs(t, Count(6).Validate("EK 1"), ErrValueOutOfRange)
	assert.NoError(t, Count(100).Validate("EK 5"))
	assert.ErrorIs(t, Count(2).Validate("EK 12"), ErrValueOutOfRange)
	assert.NoError(t, Empty.Validate("EK 12"))
}

func TestParseOfficeValue(t *testing.T) {
	v, err := ParseOfficeValue("-")
	require.NoError(t, err)
	assert.True(t, v.Empty)

	v, err = ParseOfficeValue("12")
	require.NoError(t, err)
	assert.Equal(t, Count(12), v)

	_, err = ParseOfficeValue("-3")
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = ParseOfficeValue("lots")
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestItemRange_Choices(t *testing.T) {
	assert.Equal(t, []int{1}, RangeFor("EK 19").Choices())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, RangeFor("EK 1").Choices())
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, RangeFor("EK 6").Choices())
	assert.Len(t, RangeFor("EK 7 A").Choices(), 20)
	assert.Equal(t, RangeFor("EK 1"), RangeFor("EK 99"), "unknown items fall back to 0-5")
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, LimitedOfficeItems, ItemsForRoom("30"))
	assert.Equal(t, OfficeItems, ItemsForRoom("463"))
	assert.True(t, IsOfficeRoom("162"))
	assert.False(t, IsOfficeRoom("999"))
	assert.True(t, IsCategory(KindPersonnel, ParkingKey))
	assert.True(t, IsCategory(KindBikes, "6A"))
	assert.False(t, IsCategory(KindBikes, ParkingKey))
	assert.Len(t, CategoriesFor(KindPersonnel), len(Zones)+1)
	assert.Len(t, Zones, 7, "CategoriesFor must not grow the shared zone slice")
}
