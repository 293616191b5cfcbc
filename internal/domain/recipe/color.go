package recipe

// DefaultTagColor is returned for tags without an explicit color.
const DefaultTagColor = "gray"

var tagColors = map[string]string{
	"spicy":        "red",
	"vegetarian":   "green",
	"healthy":      "emerald",
	"high protein": "blue",
	"high calorie": "orange",
	"low calorie":  "teal",
	"sweet":        "pink",
	"dessert":      "purple",
	"rice":         "yellow",
	"drink":        "cyan",
}

// TagColor maps a tag to its badge color.
func TagColor(tag string) string {
	if c, ok := tagColors[tag]; ok {
		return c
	}
	return DefaultTagColor
}
