// Package catalog holds the fixed income and expense category lists and
// their display attributes.
package catalog

import "github.com/theirongolddev/moneymirror/internal/model"

// Default display attributes for categories missing from the catalog.
const (
	DefaultColor = "#64748b"
	DefaultIcon  = "⚪"
)

// Category is one catalog entry.
type Category struct {
	Name  string
	Icon  string
	Color string
}

var expense = []Category{
	{Name: "Food", Icon: "🍔", Color: "#f43f5e"},
	{Name: "Travel", Icon: "🚕", Color: "#3b82f6"},
	{Name: "Shopping", Icon: "🛍️", Color: "#eab308"},
	{Name: "Bills", Icon: "🧾", Color: "#a855f7"},
	{Name: "Entmt", Icon: "🎬", Color: "#ec4899"},
	{Name: "Health", Icon: "❤️", Color: "#ef4444"},
	{Name: "Other", Icon: "📦", Color: "#64748b"},
}

var income = []Category{
	{Name: "Salary", Icon: "💰", Color: "#10b981"},
	{Name: "Freelance", Icon: "⚡", Color: "#f59e0b"},
	{Name: "Gift", Icon: "🎁", Color: "#8b5cf6"},
	{Name: "Invest", Icon: "📈", Color: "#06b6d4"},
	{Name: "Other", Icon: "📦", Color: "#64748b"},
}

// Expense returns a copy of the ordered expense categories.
func Expense() []Category {
	return append([]Category(nil), expense...)
}

// Income returns a copy of the ordered income categories.
func Income() []Category {
	return append([]Category(nil), income...)
}

// For returns the ordered categories for the given transaction kind.
func For(kind model.Kind) []Category {
	if kind == model.Income {
		return Income()
	}
	return Expense()
}

// Names returns the category names for kind, in catalog order.
func Names(kind model.Kind) []string {
	list := For(kind)
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	return names
}

// Lookup searches Expense then Income; the first match wins.
func Lookup(name string) (Category, bool) {
	for _, c := range expense {
		if c.Name == name {
			return c, true
		}
	}
	for _, c := range income {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// ColorOf returns the hex color for a category, or DefaultColor.
func ColorOf(name string) string {
	if c, ok := Lookup(name); ok {
		return c.Color
	}
	return DefaultColor
}

// IconOf returns the icon for a category, or DefaultIcon.
func IconOf(name string) string {
	if c, ok := Lookup(name); ok {
		return c.Icon
	}
	return DefaultIcon
}

// Contains reports whether name is listed under kind.
func Contains(kind model.Kind, name string) bool {
	for _, c := range For(kind) {
		if c.Name == name {
			return true
		}
	}
	return false
}
