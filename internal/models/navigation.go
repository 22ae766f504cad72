package models

type NavItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsSubItem bool   `json:"isSubItem"`
}

type NavGroup struct {
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

// StorageStatus describes which backend currently serves sections.
type StorageStatus struct {
	Mode     string `json:"mode"`
	ReadOnly bool   `json:"readOnly"`
}

// SearchHit is one search result; Field names where the query matched.
type SearchHit struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	GroupName string `json:"group_name"`
	Field     string `json:"field"`
	Snippet   string `json:"snippet"`
}
