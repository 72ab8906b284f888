package domain

// Shape - форма зоны геофильтра
type Shape string

const (
	// ShapeCircle - истинный радиус по большому кругу
	ShapeCircle Shape = "circle"
	// ShapeSquare - приближённая градусная рамка вокруг центра
	ShapeSquare Shape = "square"
)

// ParseShape разбирает значение query-параметра; пустая строка - circle
func ParseShape(s string) (Shape, bool) {
	switch Shape(s) {
	case "":
		return ShapeCircle, true
	case ShapeCircle:
		return ShapeCircle, true
	case ShapeSquare:
		return ShapeSquare, true
	default:
		return "", false
	}
}
