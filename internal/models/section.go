package models

import "time"

const DefaultGroup = "General"

// Section is one documentation entry.
type Section struct {
	ID          int64     `db:"id"           json:"id"`
	Title       string    `db:"title"        json:"title"`
	Slug        string    `db:"slug"         json:"slug"`
	Content     *string   `db:"content"      json:"content"`
	Description *string   `db:"description"  json:"description"`
	OrderIndex  int       `db:"order_index"  json:"order_index"`
	GroupName   string    `db:"group_name"   json:"group_name"`
	IsSubItem   bool      `db:"is_sub_item"  json:"is_sub_item"`
	IsPublished bool      `db:"is_published" json:"is_published"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}

// NewSection carries the fields of a section about to be inserted.
// OrderIndex is assigned by the store.
type NewSection struct {
	Title       string
	Slug        string
	Content     *string
	Description *string
	GroupName   string
	IsSubItem   bool
	IsPublished bool
}

// SectionPatch is a partial update; nil fields are left untouched.
// swagger:model SectionPatch
type SectionPatch struct {
	Title       *string `json:"title,omitempty"        example:"Quick Start"`
	Slug        *string `json:"slug,omitempty"         example:"quickstart"`
	Content     *string `json:"content,omitempty"`
	Description *string `json:"description,omitempty"`
	GroupName   *string `json:"group_name,omitempty"   example:"Guides"`
	OrderIndex  *int    `json:"order_index,omitempty"`
	IsSubItem   *bool   `json:"is_sub_item,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

func (p SectionPatch) Empty() bool {
	return p.Title == nil && p.Slug == nil && p.Content == nil && p.Description == nil &&
		p.GroupName == nil && p.OrderIndex == nil && p.IsSubItem == nil && p.IsPublished == nil
}

// swagger:model CreateSectionRequest
type CreateSectionRequest struct {
	Title       string `json:"title"        example:"Quick Start"`
	Slug        string `json:"slug"         example:"quickstart"`
	Content     string `json:"content"      example:"# Quick Start"`
	Description string `json:"description"  example:"Get started quickly"`
	GroupName   string `json:"group_name"   example:"Guides"`
	IsSubItem   bool   `json:"is_sub_item"`
	IsPublished *bool  `json:"is_published,omitempty"`
}

// Body returns the section body, synthesising one from title and
// description when none is stored.
func (s *Section) Body() string {
	if s.Content != nil && *s.Content != "" {
		return *s.Content
	}
	desc := ""
	if s.Description != nil {
		desc = *s.Description
	}
	return "# " + s.Title + "\n\n" + desc
}
