package model

const (
	// Rating bounds
	MinRating = 1
	MaxRating = 5

	// Content limits
	MaxTitleLength   = 100
	MaxCommentLength = 1000

	// Sort fields accepted by list queries
	SortByCreatedAt = "createdAt"
	SortByRating    = "rating"
	SortByHelpful   = "helpful"

	// Sort orders
	OrderAsc  = "asc"
	OrderDesc = "desc"
)
