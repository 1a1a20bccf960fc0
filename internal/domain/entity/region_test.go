package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOf(t *testing.T) {
	assert.Equal(t, Province, LevelOf("11"))
	assert.Equal(t, City, LevelOf("11.01"))
	assert.Equal(t, District, LevelOf("11.01.02"))
	assert.Equal(t, Village, LevelOf("11.01.02.2001"))
	assert.Equal(t, Level(5), LevelOf("1.2.3.4.5"))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "adm1", Province.Key())
	assert.Equal(t, "adm4", Village.Key())
	assert.Equal(t, "Kabupaten/Kota", City.String())
	assert.Equal(t, "Level(7)", Level(7).String())
	assert.False(t, Level(0).Valid())

	next, ok := District.Next()
	assert.True(t, ok)
	assert.Equal(t, Village, next)

	_, ok = Village.Next()
	assert.False(t, ok)
}

func TestRegion_AddChild(t *testing.T) {
	district := NewRegion("11.01.02", "Kluet Utara")

	first := district.AddChild(NewRegion("11.01.02.2001", "Fajar"))
	again := district.AddChild(NewRegion("11.01.02.2001", "Fajar Harapan"))

	assert.Same(t, first, again)
	assert.Equal(t, "Fajar Harapan", first.Name)
	require.Len(t, district.Children(), 1)

	assert.True(t, first.IsLeaf())
	assert.Nil(t, first.Children())
	assert.Nil(t, first.AddChild(NewRegion("11.01.02.2001.1", "x")))
}

func TestRegion_AddChildKeepsFirstNameForInnerNodes(t *testing.T) {
	province := NewRegion("11", "Aceh")
	first := province.AddChild(NewRegion("11.01", "Aceh Selatan"))
	again := province.AddChild(NewRegion("11.01", "Renamed"))

	assert.Same(t, first, again)
	assert.Equal(t, "Aceh Selatan", again.Name)
}

func TestHierarchy_FindAndLookup(t *testing.T) {
	h := NewHierarchy()
	aceh := h.AddProvince(NewRegion("11", "Aceh"))
	city := aceh.AddChild(NewRegion("11.01", "Aceh Selatan"))
	district := city.AddChild(NewRegion("11.01.01", "Bakongan"))
	district.AddChild(NewRegion("11.01.01.2001", "Keude Bakongan"))

	village, ok := h.Find("11.01.01.2001")
	require.True(t, ok)
	assert.Equal(t, "Keude Bakongan", village.Name)

	found, ok := h.Lookup("11", "11.01")
	require.True(t, ok)
	assert.Same(t, city, found)

	_, ok = h.Find("12")
	assert.False(t, ok)
	_, ok = h.Find("")
	assert.False(t, ok)
	_, ok = h.Lookup()
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len())
}

func TestPathOf(t *testing.T) {
	assert.Equal(t, []string{"11", "11.01", "11.01.02"}, PathOf("11.01.02"))
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, IsValidCode("11"))
	assert.True(t, IsValidCode("11.01.02.2001"))
	assert.False(t, IsValidCode(""))
	assert.False(t, IsValidCode("11..01"))
	assert.False(t, IsValidCode("aceh"))
	assert.False(t, IsValidCode("1.2.3.4.5"))
}

func TestNoData(t *testing.T) {
	f := NoData(City)
	assert.False(t, f.HasData)
	assert.Equal(t, City, f.Level)
	assert.Equal(t, NotAvailable, f.Location.Province)
	assert.Empty(t, f.Days)
}
