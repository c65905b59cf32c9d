package dto

import (
	"time"

	"wishnest/internal/domains/wish/model"
	"wishnest/shared"
	"wishnest/shared/constant"
	gDto "wishnest/shared/dto"
	gModel "wishnest/shared/model"
	"wishnest/shared/timezone"

	"github.com/google/uuid"
)

type CreateWishRequest struct {
	ItemName    string  `json:"item_name"             validate:"required,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Priority    string  `json:"priority,omitempty"    validate:"omitempty,oneof=High Medium Low"`
	DueDate     *string `json:"due_date,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	Image       string  `json:"image,omitempty"       validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
}

func (c *CreateWishRequest) ToModel(userID string, imageURL *string) model.Wish {
	priority := c.Priority
	if priority == "" {
		priority = constant.PriorityMedium
	}

	return model.Wish{
		ID:          uuid.NewString(),
		UserID:      userID,
		ItemName:    c.ItemName,
		Description: c.Description,
		Priority:    priority,
		DueDate:     normalizeDueDate(c.DueDate),
		ImageURL:    imageURL,
		IsPublic:    false,
		IsCompleted: false,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// UpdateWishRequest replaces a wish's editable fields wholesale. Priority
// carries no default here: an update must always state it.
type UpdateWishRequest struct {
	ItemName    string  `json:"item_name"              validate:"required,max=255"`
	Description *string `json:"description,omitempty"  validate:"omitempty,max=1000"`
	Priority    string  `json:"priority"               validate:"required,oneof=High Medium Low"`
	DueDate     *string `json:"due_date,omitempty"     validate:"omitempty,datetime=2006-01-02"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
	Image       string  `json:"image,omitempty"        validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
}

// ToUpdateFields builds the column map for the owner-scoped UPDATE. Absent
// description and due date overwrite with NULL rather than being skipped.
func (u *UpdateWishRequest) ToUpdateFields(imageURL *string) map[string]any {
	fields := map[string]any{
		model.FieldItemName:     u.ItemName,
		model.FieldDescription:  u.Description,
		model.FieldPriority:     u.Priority,
		model.FieldDueDate:      normalizeDueDate(u.DueDate),
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if u.IsCompleted != nil {
		fields[model.FieldIsCompleted] = *u.IsCompleted
	}

	if imageURL != nil {
		fields[model.FieldImageURL] = *imageURL
	}

	return fields
}

type SetVisibilityRequest struct {
	IsPublic *bool `json:"is_public" validate:"required"`
}

// ListWishesRequest holds the optional list filters. All present filters
// combine with AND; the free-text query matches item name or description.
type ListWishesRequest struct {
	Query    string `validate:"omitempty,max=255"`
	Priority string `validate:"omitempty,oneof=High Medium Low"`
	Status   string `validate:"omitempty,oneof=completed pending"`
}

func (l *ListWishesRequest) ToFilter(ownerID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldUserID,
			Value:    ownerID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if l.Query != "" {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldItemName,
					ArgName:  "query_item_name",
					Value:    l.Query,
					Operator: gDto.FilterOperatorLike,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldDescription,
					ArgName:  "query_description",
					Value:    l.Query,
					Operator: gDto.FilterOperatorLike,
					Table:    model.TableName,
				},
			},
		})
	}

	if l.Priority != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldPriority,
			Value:    l.Priority,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if l.Status != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldIsCompleted,
			Value:    l.Status == constant.StatusCompleted,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

type WishResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	ItemName    string  `json:"item_name"`
	Description *string `json:"description,omitempty"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsPublic    bool    `json:"is_public"`
	IsCompleted bool    `json:"is_completed"`
	gDto.Metadata
}

func (r *WishResponse) FromModel(model model.Wish) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.ItemName = model.ItemName
	r.Description = model.Description
	r.Priority = model.Priority
	r.DueDate = formatDueDate(model.DueDate)
	r.ImageURL = model.ImageURL
	r.IsPublic = model.IsPublic
	r.IsCompleted = model.IsCompleted
	r.Metadata.FromModel(model.Metadata)
}

type GetWishesResponse struct {
	Wishes    []WishResponse `json:"wishes"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetWishesResponse) FromModels(models []model.Wish, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Wishes = make([]WishResponse, len(models))
	for i, mod := range models {
		r.Wishes[i].FromModel(mod)
	}
}

// WishEvent is the payload published to the wish events topic on every
// mutation.
type WishEvent struct {
	Type       string `json:"type"`
	WishID     string `json:"wish_id"`
	UserID     string `json:"user_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

func normalizeDueDate(dueDate *string) *string {
	if dueDate == nil || *dueDate == "" {
		return nil
	}

	return dueDate
}

// formatDueDate trims the timestamp the DATE column scans back as down to
// the calendar date shape requests carry, so a fetched wish can be
// resubmitted unchanged.
func formatDueDate(dueDate *string) *string {
	if dueDate == nil {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, *dueDate)
	if err != nil {
		return dueDate
	}

	formatted := parsed.Format(constant.DueDateFormat)

	return &formatted
}
