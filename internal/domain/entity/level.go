package entity

import "fmt"

// Level is the administrative depth of a region code: the number of dot-separated segments.
type Level int

const (
	Province Level = iota + 1 // adm1
	City                      // adm2, kabupaten/kota
	District                  // adm3, kecamatan
	Village                   // adm4, kelurahan/desa
)

// Levels lists every administrative level from the top down.
var Levels = []Level{Province, City, District, Village}

var levelKeys = map[Level]string{
	Province: "adm1",
	City:     "adm2",
	District: "adm3",
	Village:  "adm4",
}

var levelNames = map[Level]string{
	Province: "Provinsi",
	City:     "Kabupaten/Kota",
	District: "Kecamatan",
	Village:  "Kelurahan/Desa",
}

// Valid reports whether l is one of the four administrative levels.
func (l Level) Valid() bool {
	return l >= Province && l <= Village
}

// Key returns the query parameter name used by the forecast API (adm1..adm4).
func (l Level) Key() string {
	if key, ok := levelKeys[l]; ok {
		return key
	}
	return fmt.Sprintf("adm%d", int(l))
}

// String returns the Indonesian display name of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Next returns the level below l and false when l is the deepest level.
func (l Level) Next() (Level, bool) {
	if l >= Village || !l.Valid() {
		return l, false
	}
	return l + 1, true
}
