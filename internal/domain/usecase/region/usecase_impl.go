package region

import (
	"fmt"

	"cek-cuaca/internal/domain/entity"
)

type regionUseCase struct {
	hierarchy *entity.Hierarchy
}

func NewRegionUseCase(hierarchy *entity.Hierarchy) UseCase {
	return &regionUseCase{hierarchy: hierarchy}
}

func (uc *regionUseCase) Provinces() []*entity.Region {
	return uc.hierarchy.Provinces()
}

func (uc *regionUseCase) Children(path ...string) ([]*entity.Region, error) {
	if len(path) == 0 {
		return uc.hierarchy.Provinces(), nil
	}

	region, ok := uc.hierarchy.Lookup(path...)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrRegionNotFound, path)
	}
	return region.Children(), nil
}

func (uc *regionUseCase) Find(code string) (*entity.Region, error) {
	region, ok := uc.hierarchy.Find(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, code)
	}
	return region, nil
}

func (uc *regionUseCase) Count() int {
	return uc.hierarchy.Len()
}
