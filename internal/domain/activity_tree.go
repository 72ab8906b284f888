package domain

import (
	"github.com/google/uuid"
)

// ActivityTreeNode - узел дерева активностей организации. Children равен nil
// у листа: это отличает лист от ветки, чьи дети не попали в выборку.
type ActivityTreeNode struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	Children []*ActivityTreeNode `json:"children,omitempty"`
}

// BuildActivityForest собирает из плоского списка активностей (с цепочками
// предков, разрешёнными на два уровня вверх) минимальный лес путей от корней
// к листьям. Общие предки склеиваются, а не дублируются.
//
// Два прохода: сначала все уникальные узлы цепочек складываются в арену по
// id, затем дети пришиваются к родителям и извлекаются корни.
func BuildActivityForest(activities []*Activity) []*ActivityTreeNode {
	arena := make(map[uuid.UUID]*ActivityTreeNode, len(activities))
	parents := make(map[uuid.UUID]*uuid.UUID, len(activities))
	order := make([]uuid.UUID, 0, len(activities))

	for _, a := range activities {
		// Цепочка предков ограничена тремя уровнями
		for cur := a; cur != nil; cur = cur.Parent {
			if _, seen := arena[cur.ID]; seen {
				continue
			}
			arena[cur.ID] = &ActivityTreeNode{ID: cur.ID, Name: cur.Name}
			parents[cur.ID] = cur.ParentID
			order = append(order, cur.ID)
		}
	}

	var roots []*ActivityTreeNode
	for _, id := range order {
		parentID := parents[id]
		if parentID == nil {
			roots = append(roots, arena[id])
			continue
		}
		parent, ok := arena[*parentID]
		if !ok {
			// Предок не разрешён - узел становится корнем своего пути
			roots = append(roots, arena[id])
			continue
		}
		parent.Children = append(parent.Children, arena[id])
	}

	return roots
}
