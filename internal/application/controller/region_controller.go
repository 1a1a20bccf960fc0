package controller

import (
	"errors"
	"net/http"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/internal/domain/model"
	"cek-cuaca/internal/domain/usecase/region"
	"cek-cuaca/pkg/msg"

	"github.com/labstack/echo/v4"
)

type RegionController struct {
	api     *echo.Group
	useCase region.UseCase
}

func NewRegionController(api *echo.Group, useCase region.UseCase) *RegionController {
	return &RegionController{api: api, useCase: useCase}
}

// InitRegionRoutes initializes region routes
func (controller *RegionController) InitRegionRoutes() {
	controller.api.GET("/regions", controller.FindProvinces)
	controller.api.GET("/regions/:code", controller.FindRegion)
}

// FindProvinces godoc
// @Summary List provinces
// @Tags region
// @Produce json
// @Success 200 {array} model.RegionDTO
// @Router /regions [get]
func (controller *RegionController) FindProvinces(c echo.Context) error {
	return c.JSON(http.StatusOK, model.NewRegionDTOs(controller.useCase.Provinces()))
}

// FindRegion godoc
// @Summary Get a region and its direct children
// @Tags region
// @Produce json
// @Param code path string true "Region code, e.g. 11.01"
// @Success 200 {object} model.RegionDTO
// @Failure 400 {object} map[string]string "Malformed region code"
// @Failure 404 {object} map[string]string "Region not found"
// @Router /regions/{code} [get]
func (controller *RegionController) FindRegion(c echo.Context) error {
	code := c.Param("code")
	if !entity.IsValidCode(code) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("region.invalid-code", code)})
	}

	found, err := controller.useCase.Find(code)
	if err != nil {
		if errors.Is(err, region.ErrRegionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("region.unknown", code)})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	dto := model.NewRegionDTO(found)
	dto.Children = model.NewRegionDTOs(found.Children())
	return c.JSON(http.StatusOK, dto)
}
