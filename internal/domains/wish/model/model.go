package model

import (
	"slices"

	"wishnest/shared/constant"
	"wishnest/shared/model"
)

const (
	TableName  = "wishlists"
	EntityName = "wish"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldItemName    = "item_name"
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldDueDate     = "due_date"
	FieldImageURL    = "image_url"
	FieldIsPublic    = "is_public"
	FieldIsCompleted = "is_completed"
)

var sortableFields = []string{
	FieldItemName,
	FieldPriority,
	FieldDueDate,
	constant.FieldCreatedAt,
	constant.FieldUpdatedAt,
}

// IsSortableField reports whether clients may order the wish list by the
// given column. Anything outside this set never reaches a query.
func IsSortableField(field string) bool {
	return slices.Contains(sortableFields, field)
}

type Wish struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	ItemName    string  `db:"item_name"`
	Description *string `db:"description"`
	Priority    string  `db:"priority"`
	DueDate     *string `db:"due_date"`
	ImageURL    *string `db:"image_url"`
	IsPublic    bool    `db:"is_public"`
	IsCompleted bool    `db:"is_completed"`
	model.Metadata
}
