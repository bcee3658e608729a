package model

import "github.com/deppfellow/todo-api/internal/validation"

// CreateListRequest is the body of POST /lists/ (form-encoded or JSON).
type CreateListRequest struct {
	BodyState
	Name string `json:"name" form:"name" validate:"required,max=100"`
}

func (r *CreateListRequest) Validate() error {
	if err := r.BodyError(); err != nil {
		return err
	}
	return validation.Struct(r)
}

// ListPathRequest addresses one list.
type ListPathRequest struct {
	ListID int64 `param:"pk" json:"-"`
}

func (r *ListPathRequest) Validate() error {
	return nil
}

// CreateItemRequest is the body of POST /lists/{pk}/items/.
type CreateItemRequest struct {
	BodyState
	ListID    int64    `param:"pk" json:"-"`
	Title     string   `json:"title" validate:"required,max=100"`
	Completed bool     `json:"completed"`
	Deadline  Deadline `json:"deadline"`
}

func (r *CreateItemRequest) Validate() error {
	if err := r.BodyError(); err != nil {
		return err
	}
	if err := validation.Struct(r); err != nil {
		return err
	}
	return r.Deadline.Validate()
}

// UpdateItemRequest is the body of PATCH /lists/{pk}/items/{li}.
// Nil fields and an unset Deadline keep the stored value. An empty title is
// stored as sent.
type UpdateItemRequest struct {
	BodyState
	ListID    int64    `param:"pk" json:"-"`
	ItemID    int64    `param:"li" json:"-"`
	Title     *string  `json:"title"`
	Completed *bool    `json:"completed"`
	Deadline  Deadline `json:"deadline"`
}

func (r *UpdateItemRequest) Validate() error {
	if err := r.BodyError(); err != nil {
		return err
	}
	if r.Title != nil {
		if err := validation.Var("title", *r.Title, "max=100"); err != nil {
			return err
		}
	}
	return r.Deadline.Validate()
}

// Apply merges the fields present in r into item.
func (r *UpdateItemRequest) Apply(item *TodoItem) {
	if r.Title != nil {
		item.Title = *r.Title
	}
	if r.Completed != nil {
		item.Completed = *r.Completed
	}
	if r.Deadline.Set {
		item.Deadline = r.Deadline.Time
	}
}

// ItemPathRequest addresses one item inside one list.
type ItemPathRequest struct {
	ListID int64 `param:"pk" json:"-"`
	ItemID int64 `param:"li" json:"-"`
}

func (r *ItemPathRequest) Validate() error {
	return nil
}

// EmptyRequest is the payload of endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}
