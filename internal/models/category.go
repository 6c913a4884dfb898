package models

import "time"

type Category struct {
	ID        int64     `json:"id"`
	Code      int64     `json:"code"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Code is a pointer so code 0 is distinguishable from a missing code.
type CreateCategoryRequest struct {
	Code *int64 `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

type UpdateCategoryRequest struct {
	Code *int64 `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

type CategoryResource struct {
	ID   int64  `json:"id"`
	Code int64  `json:"code"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewCategoryResource(c *Category) *CategoryResource {
	if c == nil {
		return nil
	}

	return &CategoryResource{
		ID:   c.ID,
		Code: c.Code,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func NewCategoryCollection(categories []*Category) []*CategoryResource {
	resources := make([]*CategoryResource, 0, len(categories))
	for _, c := range categories {
		resources = append(resources, NewCategoryResource(c))
	}

	return resources
}
