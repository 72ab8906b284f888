package usecase

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/org-directory/internal/domain"
	"github.com/org-directory/internal/domain/repository"
	"github.com/org-directory/internal/pkg/errors"
	"github.com/org-directory/internal/pkg/utils"
	"github.com/org-directory/internal/usecase/dto"
)

// geoFilter сводит геопараметры запроса к множеству id зданий линейным
// сканированием всей таблицы (пространственного индекса нет - известное
// ограничение масштаба)
type geoFilter struct {
	buildingRepo repository.BuildingRepository
	logger       *zap.Logger
}

// resolveBuildingIDs возвращает id зданий в зоне и признак того, что
// геофильтр вообще был задан
func (g *geoFilter) resolveBuildingIDs(ctx context.Context, geo dto.GeoQuery) ([]uuid.UUID, bool, error) {
	if !geo.Provided() {
		return nil, false, nil
	}
	if !geo.Complete() {
		return nil, false, errors.ErrGeoParamsIncomplete
	}

	var fields []errors.FieldError
	if !utils.ValidLatitude(geo.Latitude) {
		fields = append(fields, errors.FieldError{
			Field:   "latitude",
			Message: "Latitude should be in format 00.0000",
		})
	}
	if !utils.ValidLongitude(geo.Longitude) {
		fields = append(fields, errors.FieldError{
			Field:   "longitude",
			Message: "Longitude should be in format 000.0000",
		})
	}
	if len(fields) > 0 {
		return nil, false, errors.Validation(fields...)
	}

	shape, ok := domain.ParseShape(geo.Shape)
	if !ok {
		return nil, false, errors.ErrInvalidShape
	}

	centerLat, _ := strconv.ParseFloat(geo.Latitude, 64)
	centerLon, _ := strconv.ParseFloat(geo.Longitude, 64)

	buildings, err := g.buildingRepo.ListAll(ctx)
	if err != nil {
		return nil, false, err
	}

	ids := FilterBuildingsInRadius(centerLat, centerLon, geo.Radius, shape, buildings)
	return ids, true, nil
}

// FilterBuildingsInRadius отбирает здания внутри зоны вокруг центра.
// Для circle - хаверсинус по большому кругу, для square - градусная рамка.
func FilterBuildingsInRadius(centerLat, centerLon, radiusKm float64, shape domain.Shape, buildings []*domain.Building) []uuid.UUID {
	box := utils.DegreeBoundingBox(centerLat, centerLon, radiusKm)

	ids := make([]uuid.UUID, 0, len(buildings))
	for _, building := range buildings {
		lat, lon, err := building.Coordinates()
		if err != nil {
			continue
		}
		switch shape {
		case domain.ShapeCircle:
			if utils.HaversineDistance(centerLat, centerLon, lat, lon) <= radiusKm {
				ids = append(ids, building.ID)
			}
		case domain.ShapeSquare:
			if box.Contains(lat, lon) {
				ids = append(ids, building.ID)
			}
		}
	}
	return ids
}
