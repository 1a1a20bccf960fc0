package region

import (
	"errors"

	"cek-cuaca/internal/domain/entity"
)

var ErrRegionNotFound = errors.New("region not found")

type UseCase interface {
	// Provinces returns the level-1 regions in file order
	Provinces() []*entity.Region

	// Children returns the options below the region reached by an explicit code path.
	// An empty path returns the provinces.
	Children(path ...string) ([]*entity.Region, error)

	// Find resolves a region code through its dotted prefixes
	Find(code string) (*entity.Region, error)

	// Count returns the number of provinces loaded
	Count() int
}
