package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Resource names an entity type whose ownership chain resolves to a board.
type Resource string

const (
	ResourceStatusList    Resource = "status_list"
	ResourceCard          Resource = "card"
	ResourceChecklist     Resource = "checklist"
	ResourceChecklistItem Resource = "checklist_item"
	ResourceComment       Resource = "comment"
	ResourceAttachment    Resource = "attachment"
)

// chainPath describes the fixed foreign-key path from a resource's table up
// to status_lists, whose board_id is the ancestor board. One entry per
// resource type replaces hand-duplicated join chains in every service.
type chainPath struct {
	table string
	joins []string
}

var chainPaths = map[Resource]chainPath{
	ResourceStatusList: {
		table: "status_lists",
	},
	ResourceCard: {
		table: "cards",
		joins: []string{
			"JOIN status_lists ON status_lists.id = cards.status_list_id",
		},
	},
	ResourceChecklist: {
		table: "checklists",
		joins: []string{
			"JOIN cards ON cards.id = checklists.card_id",
			"JOIN status_lists ON status_lists.id = cards.status_list_id",
		},
	},
	ResourceChecklistItem: {
		table: "checklist_items",
		joins: []string{
			"JOIN checklists ON checklists.id = checklist_items.checklist_id",
			"JOIN cards ON cards.id = checklists.card_id",
			"JOIN status_lists ON status_lists.id = cards.status_list_id",
		},
	},
	ResourceComment: {
		table: "comments",
		joins: []string{
			"JOIN cards ON cards.id = comments.card_id",
			"JOIN status_lists ON status_lists.id = cards.status_list_id",
		},
	},
	ResourceAttachment: {
		table: "attachments",
		joins: []string{
			"JOIN cards ON cards.id = attachments.card_id",
			"JOIN status_lists ON status_lists.id = cards.status_list_id",
		},
	},
}

type ChainRepository struct {
	db *gorm.DB
}

func NewChainRepository(db *gorm.DB) *ChainRepository {
	return &ChainRepository{db: db}
}

// AncestorBoardID walks the resource's foreign-key path and returns the id
// of its owning board. Returns ErrNotFound when the resource or any ancestor
// is missing.
func (r *ChainRepository) AncestorBoardID(ctx context.Context, res Resource, id uint) (uint, error) {
	path, ok := chainPaths[res]
	if !ok {
		return 0, fmt.Errorf("no ancestor chain for resource type %q", res)
	}

	q := r.db.WithContext(ctx).
		Table(path.table).
		Select("status_lists.board_id AS board_id")
	for _, join := range path.joins {
		q = q.Joins(join)
	}

	var row struct{ BoardID uint }
	err := q.Where(path.table+".id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return row.BoardID, nil
}
