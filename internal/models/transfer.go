package models

import "encoding/json"

const ExportVersion = "1.0"

// ExportDocument is both the export payload and the fallback snapshot format.
type ExportDocument struct {
	Version    string          `json:"version"`
	ExportedAt string          `json:"exportedAt,omitempty"`
	Sections   []ExportSection `json:"sections"`
}

// ExportSection is a section without server-generated id and timestamps.
type ExportSection struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Content     *string `json:"content"`
	Description *string `json:"description"`
	GroupName   string  `json:"group_name"`
	OrderIndex  int     `json:"order_index"`
	IsSubItem   bool    `json:"is_sub_item"`
	IsPublished bool    `json:"is_published"`
}

// swagger:model ImportRequest
type ImportRequest struct {
	Sections   []json.RawMessage `json:"sections" swaggertype:"array,object"`
	ReplaceAll bool              `json:"replaceAll"`
}

// ImportSection is one imported record; IsPublished defaults to true when absent.
type ImportSection struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Content     *string `json:"content"`
	Description *string `json:"description"`
	GroupName   string  `json:"group_name"`
	IsSubItem   bool    `json:"is_sub_item"`
	IsPublished *bool   `json:"is_published"`
}

type ImportResult struct {
	Success  bool   `json:"success"`
	Imported int    `json:"imported"`
	Failed   int    `json:"failed"`
	Deleted  int    `json:"deleted"`
	Message  string `json:"message"`
}

func (s *Section) Export() ExportSection {
	return ExportSection{
		Title:       s.Title,
		Slug:        s.Slug,
		Content:     s.Content,
		Description: s.Description,
		GroupName:   s.GroupName,
		OrderIndex:  s.OrderIndex,
		IsSubItem:   s.IsSubItem,
		IsPublished: s.IsPublished,
	}
}

// CreateRequest maps an imported record onto a create request.
func (s ImportSection) CreateRequest() CreateSectionRequest {
	req := CreateSectionRequest{
		Title:       s.Title,
		Slug:        s.Slug,
		GroupName:   s.GroupName,
		IsSubItem:   s.IsSubItem,
		IsPublished: s.IsPublished,
	}
	if s.Content != nil {
		req.Content = *s.Content
	}
	if s.Description != nil {
		req.Description = *s.Description
	}
	return req
}
