package models

// Event categories form a closed enumeration; anything else is rejected at
// creation time.
const (
	CategoryMusic    = "music"
	CategoryTech     = "tech"
	CategoryWorkshop = "workshop"
	CategoryBusiness = "business"
	CategorySports   = "sports"
	CategoryArt      = "art"
	CategoryFood     = "food"
	CategoryOther    = "other"
)

// CategoryAll is the wildcard used by the discovery filter, not a real
// category.
const CategoryAll = "all"

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var Categories = []Category{
	{Value: CategoryMusic, Label: "Music", Icon: "🎵"},
	{Value: CategoryTech, Label: "Technology", Icon: "💻"},
	{Value: CategoryWorkshop, Label: "Workshop", Icon: "🛠️"},
	{Value: CategoryBusiness, Label: "Business", Icon: "💼"},
	{Value: CategorySports, Label: "Sports", Icon: "⚽"},
	{Value: CategoryArt, Label: "Art", Icon: "🎨"},
	{Value: CategoryFood, Label: "Food", Icon: "🍽️"},
	{Value: CategoryOther, Label: "Other", Icon: "📅"},
}

func IsValidCategory(value string) bool {
	for _, category := range Categories {
		if category.Value == value {
			return true
		}
	}
	return false
}
