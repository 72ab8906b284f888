package dto

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

// ActivityCreateRequest - запрос на создание активности
type ActivityCreateRequest struct {
	Name     string     `json:"name" validate:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// ActivityUpdateRequest - частичное обновление активности
type ActivityUpdateRequest struct {
	Name     *string      `json:"name"`
	ParentID OptionalUUID `json:"parent_id"`
}

// OptionalUUID различает отсутствующее поле, явный null и значение.
// Для parent_id это три разных случая: не трогать, перенести в корень,
// перенести под другой узел.
type OptionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

// BuildingCreateRequest - запрос на создание здания
type BuildingCreateRequest struct {
	Address   string `json:"address" validate:"required"`
	Latitude  string `json:"latitude" validate:"required,coord_lat"`
	Longitude string `json:"longitude" validate:"required,coord_lon"`
}

// BuildingUpdateRequest - частичное обновление здания
type BuildingUpdateRequest struct {
	Address   *string `json:"address"`
	Latitude  *string `json:"latitude" validate:"omitempty,coord_lat"`
	Longitude *string `json:"longitude" validate:"omitempty,coord_lon"`
}

// OrganizationCreateRequest - запрос на создание организации
type OrganizationCreateRequest struct {
	Name        string      `json:"name" validate:"required"`
	BuildingID  uuid.UUID   `json:"building_id" validate:"required"`
	Phones      []string    `json:"phones" validate:"required,min=1,dive,phone"`
	ActivityIDs []uuid.UUID `json:"activity_ids"`
}

// OrganizationUpdateRequest - частичное обновление организации.
// Nil-срез означает "не менять"; переданный срез замещает набор целиком.
type OrganizationUpdateRequest struct {
	Name        *string     `json:"name"`
	BuildingID  *uuid.UUID  `json:"building_id"`
	Phones      []string    `json:"phones" validate:"omitempty,dive,phone"`
	ActivityIDs []uuid.UUID `json:"activity_ids"`
}

// GeoQuery - сырые геопараметры из query-строки. Поля заданы строками,
// форматы проверяются после проверки полноты набора.
type GeoQuery struct {
	Latitude  string
	Longitude string
	Radius    float64
	Shape     string
}

// Provided - задан хотя бы один из трёх обязательных параметров
func (g GeoQuery) Provided() bool {
	return g.Latitude != "" || g.Longitude != "" || g.Radius != 0
}

// Complete - заданы все три
func (g GeoQuery) Complete() bool {
	return g.Latitude != "" && g.Longitude != "" && g.Radius != 0
}

// OrganizationListQuery - фильтры списка организаций
type OrganizationListQuery struct {
	BuildingID     *uuid.UUID
	ActivityID     *uuid.UUID
	SearchActivity *string
	SearchName     *string
	Geo            GeoQuery
}
