package domain

import (
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Organization - организация: одно здание, не меньше одного телефона,
// произвольный набор ссылок на активности.
type Organization struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	BuildingID uuid.UUID `json:"building_id" db:"building_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`

	Building   *Building   `json:"building,omitempty" db:"-"`
	Phones     []*Phone    `json:"phones,omitempty" db:"-"`
	Activities []*Activity `json:"activities,omitempty" db:"-"`
}

// Phone - телефон организации, глобально уникальная строка из цифр
type Phone struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Phone          string    `json:"phone" db:"phone"`
}

// OrganizationCreate - данные для создания организации
type OrganizationCreate struct {
	Name        string
	BuildingID  uuid.UUID
	Phones      []string
	ActivityIDs []uuid.UUID
}

// OrganizationUpdate - частичное обновление. Nil-срез означает "не менять",
// переданный срез полностью замещает телефоны/связи.
type OrganizationUpdate struct {
	Name        *string
	BuildingID  *uuid.UUID
	Phones      []string
	ActivityIDs []uuid.UUID
}

// OrganizationFilter - конъюнкция независимых предикатов списка организаций.
// Флаги *Set отличают "предикат не задан" от "задан пустым множеством".
type OrganizationFilter struct {
	BuildingID     *uuid.UUID
	ActivityID     *uuid.UUID
	ActivityIDs    []uuid.UUID
	ActivityIDsSet bool
	SearchName     *string
	BuildingIDs    []uuid.UUID
	BuildingIDsSet bool
}

// NormalizePhones приводит номера к цифровому виду и схлопывает дубликаты
// внутри одной заявки, сохраняя порядок первого вхождения.
func NormalizePhones(phones []string) []string {
	seen := make(map[string]struct{}, len(phones))
	result := make([]string, 0, len(phones))
	for _, phone := range phones {
		digits := make([]rune, 0, len(phone))
		for _, r := range phone {
			if unicode.IsDigit(r) {
				digits = append(digits, r)
			}
		}
		normalized := string(digits)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}
