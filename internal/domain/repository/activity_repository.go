package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/org-directory/internal/domain"
)

// ActivityRepository определяет методы для работы со справочником активностей
type ActivityRepository interface {
	// Create вставляет активность и проверяет ограничение глубины в той же
	// транзакции; при нарушении вставка откатывается
	Create(ctx context.Context, name string, parentID *uuid.UUID) (*domain.Activity, error)

	// GetDetail возвращает активность с предками (до двух уровней вверх)
	// и детьми (до двух уровней вниз)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.Activity, error)

	// ListRoots возвращает корневые активности с вложенными детьми
	// ровно на два уровня вниз
	ListRoots(ctx context.Context) ([]*domain.Activity, error)

	// Update применяет частичное обновление с бизнес-правилами смены
	// родителя; всё в одной транзакции
	Update(ctx context.Context, id uuid.UUID, update domain.ActivityUpdate) (*domain.Activity, error)

	// Delete удаляет активность вместе с поддеревом; блокируется, пока
	// хотя бы один узел поддерева связан с организацией
	Delete(ctx context.Context, id uuid.UUID) error

	// FindIDsByName возвращает id активностей, чьё имя содержит подстроку
	// без учёта регистра
	FindIDsByName(ctx context.Context, substring string) ([]uuid.UUID, error)

	// ExpandDescendants возвращает множество id: сами узлы, их дети
	// и внуки - три яруса фиксированной глубины дерева
	ExpandDescendants(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
