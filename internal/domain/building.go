package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Building - здание с точными координатами. Широта и долгота хранятся
// строками в том виде, в каком пришли от клиента (NUMERIC в базе).
type Building struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Address   string    `json:"address" db:"address"`
	Latitude  string    `json:"latitude" db:"latitude"`
	Longitude string    `json:"longitude" db:"longitude"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Coordinates возвращает координаты числами для геовычислений
func (b *Building) Coordinates() (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(b.Latitude, 64)
	if err != nil {
		return 0, 0, err
	}
	lon, err = strconv.ParseFloat(b.Longitude, 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

// BuildingUpdate - частичное обновление здания
type BuildingUpdate struct {
	Address   *string
	Latitude  *string
	Longitude *string
}
