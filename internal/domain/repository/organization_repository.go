package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/org-directory/internal/domain"
)

// OrganizationRepository определяет методы для работы с организациями
type OrganizationRepository interface {
	// Create вставляет организацию с телефонами и связями в одной
	// транзакции
	Create(ctx context.Context, create domain.OrganizationCreate) (uuid.UUID, error)

	// GetDetail возвращает организацию со зданием, телефонами и
	// активностями, у которых разрешены предки на два уровня вверх
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.Organization, error)

	// List возвращает страницу организаций (с телефонами) по конъюнкции
	// предикатов фильтра и общее число совпадений
	List(ctx context.Context, filter domain.OrganizationFilter, limit, offset int) ([]*domain.Organization, int, error)

	// Update применяет частичное обновление; переданные телефоны и связи
	// полностью замещаются в одной транзакции
	Update(ctx context.Context, id uuid.UUID, update domain.OrganizationUpdate) (uuid.UUID, error)

	// Delete удаляет организацию вместе с телефонами и связями
	Delete(ctx context.Context, id uuid.UUID) error
}
