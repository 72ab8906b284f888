package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/org-directory/internal/domain"
)

// BuildingRepository определяет методы для работы со зданиями
type BuildingRepository interface {
	// Create вставляет здание; дубликаты адреса или пары координат
	// превращаются в Conflict
	Create(ctx context.Context, address, latitude, longitude string) (*domain.Building, error)

	// GetByID возвращает здание по id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error)

	// List возвращает страницу зданий; ids - необязательное сужение
	// по результату геофильтра (nil - без сужения)
	List(ctx context.Context, ids []uuid.UUID, idsSet bool, limit, offset int) ([]*domain.Building, int, error)

	// ListAll возвращает все здания для линейного геосканирования
	ListAll(ctx context.Context) ([]*domain.Building, error)

	// Update применяет частичное обновление
	Update(ctx context.Context, id uuid.UUID, update domain.BuildingUpdate) (*domain.Building, error)

	// Delete удаляет здание; блокируется, пока на здание ссылается
	// хотя бы одна организация
	Delete(ctx context.Context, id uuid.UUID) error
}
