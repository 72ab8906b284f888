package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/org-directory/internal/usecase/dto"
)

// parseGeoQuery читает геопараметры из query-строки как есть; полнота
// набора и форматы проверяются в use case
func parseGeoQuery(c *fiber.Ctx) dto.GeoQuery {
	return dto.GeoQuery{
		Latitude:  c.Query("latitude"),
		Longitude: c.Query("longitude"),
		Radius:    c.QueryFloat("radius"),
		Shape:     c.Query("shape"),
	}
}

// queryUUID читает необязательный uuid-параметр; (nil, false) при мусоре
func queryUUID(c *fiber.Ctx, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// queryString читает необязательный строковый параметр
func queryString(c *fiber.Ctx, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}
