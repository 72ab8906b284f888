package dto

import (
	"github.com/google/uuid"

	"github.com/org-directory/internal/domain"
)

// IDResponse - ответ мутаций, возвращающих только идентификатор
type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

// ActivityResponse - активность с родителем и/или детьми
type ActivityResponse struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	ParentID *uuid.UUID          `json:"parent_id,omitempty"`
	Parent   *ActivityResponse   `json:"parent,omitempty"`
	Children []*ActivityResponse `json:"children,omitempty"`
}

// ConvertActivity преобразует доменную активность вместе с разрешёнными
// цепочками родителей и детей
func ConvertActivity(a *domain.Activity) *ActivityResponse {
	if a == nil {
		return nil
	}
	resp := &ActivityResponse{
		ID:       a.ID,
		Name:     a.Name,
		ParentID: a.ParentID,
		Parent:   ConvertActivity(a.Parent),
	}
	for _, child := range a.Children {
		resp.Children = append(resp.Children, ConvertActivity(child))
	}
	return resp
}

// ConvertActivities преобразует список активностей
func ConvertActivities(activities []*domain.Activity) []*ActivityResponse {
	result := make([]*ActivityResponse, 0, len(activities))
	for _, a := range activities {
		result = append(result, ConvertActivity(a))
	}
	return result
}

// BuildingResponse - здание
type BuildingResponse struct {
	ID        uuid.UUID `json:"id"`
	Address   string    `json:"address"`
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
}

func ConvertBuilding(b *domain.Building) BuildingResponse {
	return BuildingResponse{
		ID:        b.ID,
		Address:   b.Address,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
}

func ConvertBuildings(buildings []*domain.Building) []BuildingResponse {
	result := make([]BuildingResponse, 0, len(buildings))
	for _, b := range buildings {
		result = append(result, ConvertBuilding(b))
	}
	return result
}

// PhoneResponse - телефон организации
type PhoneResponse struct {
	ID    uuid.UUID `json:"id"`
	Phone string    `json:"phone"`
}

func convertPhones(phones []*domain.Phone) []PhoneResponse {
	result := make([]PhoneResponse, 0, len(phones))
	for _, p := range phones {
		result = append(result, PhoneResponse{ID: p.ID, Phone: p.Phone})
	}
	return result
}

// OrganizationListItem - элемент списка организаций
type OrganizationListItem struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Phones []PhoneResponse `json:"phones"`
}

func ConvertOrganizationList(orgs []*domain.Organization) []OrganizationListItem {
	result := make([]OrganizationListItem, 0, len(orgs))
	for _, o := range orgs {
		result = append(result, OrganizationListItem{
			ID:     o.ID,
			Name:   o.Name,
			Phones: convertPhones(o.Phones),
		})
	}
	return result
}

// OrganizationDetailResponse - организация со зданием, телефонами
// и деревом активностей
type OrganizationDetailResponse struct {
	ID             uuid.UUID                  `json:"id"`
	Name           string                     `json:"name"`
	Building       BuildingResponse           `json:"building"`
	Phones         []PhoneResponse            `json:"phones"`
	ActivitiesTree []*domain.ActivityTreeNode `json:"activities_tree"`
}

func ConvertOrganizationDetail(o *domain.Organization) *OrganizationDetailResponse {
	return &OrganizationDetailResponse{
		ID:             o.ID,
		Name:           o.Name,
		Building:       ConvertBuilding(o.Building),
		Phones:         convertPhones(o.Phones),
		ActivitiesTree: domain.BuildActivityForest(o.Activities),
	}
}
