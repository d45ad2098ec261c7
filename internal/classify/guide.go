// Package classify tells the user which bin an item belongs in, using a
// bundled guide first and a remote classification service as a fallback.
package classify

import (
	"fmt"
	"strings"
)

// Category is a waste stream.
type Category string

const (
	CategoryWet       Category = "Wet"
	CategoryDry       Category = "Dry"
	CategoryEWaste    Category = "E-waste"
	CategoryHazardous Category = "Hazardous"
)

// Categories lists every accepted category.
func Categories() []Category {
	return []Category{CategoryWet, CategoryDry, CategoryEWaste, CategoryHazardous}
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Item is a disposal instruction for one kind of item.
type Item struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Guide    string   `json:"guide"`
}

// Guide returns the bundled disposal guide.
func Guide() []Item {
	return []Item{
		{Name: "Apple Core", Category: CategoryWet, Guide: "Compostable. Place in green bin."},
		{Name: "Cardboard Box", Category: CategoryDry, Guide: "Recyclable. Flatten and place in blue bin."},
		{Name: "Plastic Bottle", Category: CategoryDry, Guide: "Recyclable. Wash and remove cap."},
		{Name: "Battery", Category: CategoryEWaste, Guide: "Toxic. Take to designated collection point."},
		{Name: "Smartphone", Category: CategoryEWaste, Guide: "Recycle at e-waste centers only."},
		{Name: "Vegetable Scraps", Category: CategoryWet, Guide: "Organic waste. Great for home composting."},
		{Name: "Aluminum Can", Category: CategoryDry, Guide: "Infinite recyclability. Rinse and recycle."},
		{Name: "Expired Medicine", Category: CategoryHazardous, Guide: "Do not flush. Hand over to pharmacy or clinic."},
	}
}

// Lookup returns guide items whose name contains query, ignoring case.
// A blank query returns the whole guide.
func Lookup(query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Item
	for _, it := range Guide() {
		if strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the guide item named exactly name, ignoring case.
func Find(name string) (Item, bool) {
	n := strings.TrimSpace(name)
	for _, it := range Guide() {
		if strings.EqualFold(it.Name, n) {
			return it, true
		}
	}
	return Item{}, false
}
