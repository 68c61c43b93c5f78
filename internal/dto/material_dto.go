package dto

// MaterialListItem is one entry in GET /materials.
type MaterialListItem struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	IsLikedByUser bool   `json:"is_liked_by_user"`
}

// MaterialDetailResponse is the body of GET /materials/:slug.
type MaterialDetailResponse struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	ContentHTML   string `json:"content_html"`
	IsLikedByUser bool   `json:"is_liked_by_user"`
}

// LikeResponse is the body of the like toggle.
type LikeResponse struct {
	Liked bool `json:"liked"`
}
