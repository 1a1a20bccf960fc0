package model

import "cek-cuaca/internal/domain/entity"

// RegionDTO is the JSON view of a region and, optionally, its direct children.
type RegionDTO struct {
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Level    int         `json:"level"`
	LevelKey string      `json:"levelKey"`
	Leaf     bool        `json:"leaf"`
	Children []RegionDTO `json:"children,omitempty"`
}

// NewRegionDTO converts a region without its children.
func NewRegionDTO(region *entity.Region) RegionDTO {
	return RegionDTO{
		Code:     region.Code,
		Name:     region.Name,
		Level:    int(region.Level),
		LevelKey: region.Level.Key(),
		Leaf:     region.IsLeaf(),
	}
}

// NewRegionDTOs converts a list of regions without their children.
func NewRegionDTOs(regions []*entity.Region) []RegionDTO {
	dtos := make([]RegionDTO, 0, len(regions))
	for _, region := range regions {
		dtos = append(dtos, NewRegionDTO(region))
	}
	return dtos
}

// ForecastDTO pairs a region with its daily forecast.
type ForecastDTO struct {
	Region   RegionDTO        `json:"region"`
	Forecast *entity.Forecast `json:"forecast"`
}
