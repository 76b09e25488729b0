package model

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 2000

	// Sort fields accepted by list queries
	SortByCreatedAt = "createdAt"
	SortByPrice     = "price"
	SortByRating    = "averageRating"
	SortByName      = "name"

	// Sort orders
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Categories is the fixed set of handmade-goods categories a product
// can belong to.
var Categories = []string{
	"Jewelry & Accessories",
	"Home Decor",
	"Art & Paintings",
	"Textiles & Fabrics",
	"Woodworking",
	"Pottery & Ceramics",
	"Candles & Soaps",
	"Leather Goods",
	"Metal Work",
	"Paper Crafts",
	"Glass Work",
	"Other",
}

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c string) bool {
	for _, category := range Categories {
		if category == c {
			return true
		}
	}
	return false
}
