package utils

import (
	"github.com/gofiber/fiber/v2"
)

// PageParams - параметры постраничной выдачи из query-строки
type PageParams struct {
	Page  int
	Limit int
}

// ParsePageParams читает page/limit с подстановкой значений по умолчанию
func ParsePageParams(c *fiber.Ctx, defaultLimit, maxLimit int) PageParams {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return PageParams{Page: page, Limit: limit}
}

// Offset возвращает смещение для SQL-запроса
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
