package file

import "cek-cuaca/internal/domain/entity"

// RegionGateway loads the administrative hierarchy from its source
type RegionGateway interface {
	// LoadHierarchy reads the whole source and builds the region tree.
	// Fails with ErrRegionFileNotFound or ErrRegionFileParse.
	LoadHierarchy() (*entity.Hierarchy, error)
}
