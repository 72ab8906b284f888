package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity - узел трёхуровневого справочника видов деятельности.
// Parent и Children заполняются запросами ровно на два уровня вверх/вниз.
type Activity struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty" db:"parent_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`

	Parent   *Activity   `json:"parent,omitempty" db:"-"`
	Children []*Activity `json:"children,omitempty" db:"-"`
}

// ExceedsDepthLimit сообщает, что цепочка предков длиннее допустимых трёх
// уровней. Требует разрешённой цепочки Parent на два уровня вверх.
func (a *Activity) ExceedsDepthLimit() bool {
	return a.Parent != nil && a.Parent.Parent != nil && a.Parent.Parent.ParentID != nil
}

// ActivityUpdate - частичное обновление активности. ParentSet отличает
// "поле не передано" от "перенести в корень" (parent_id = null).
type ActivityUpdate struct {
	Name      *string
	ParentID  *uuid.UUID
	ParentSet bool
}
