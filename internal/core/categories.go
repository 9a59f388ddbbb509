package core

// Categories is the fixed, ordered reference list shown in the entry form.
// A transaction's Category field is matched against Name by exact equality;
// names that match nothing resolve to Fallback.
var Categories = []Category{
	{ID: "food", Name: "Makan", Icon: "🍔", Color: "orange"},
	{ID: "transport", Name: "Transport", Icon: "🚌", Color: "blue"},
	{ID: "school", Name: "Sekolah", Icon: "📚", Color: "indigo"},
	{ID: "snack", Name: "Jajan", Icon: "🍦", Color: "pink"},
	{ID: "game", Name: "Game", Icon: "🎮", Color: "purple"},
	{ID: "saving", Name: "Tabungan", Icon: "💰", Color: "green"},
	{ID: "other", Name: "Lainnya", Icon: "⚪", Color: "gray"},
}

// Fallback is returned for category names that match no known category.
var Fallback = Category{ID: "other", Name: "Lainnya", Icon: "⚪", Color: "gray"}

// ResolveCategory maps a display name to its category. It is total: unknown
// names return Fallback, never an error.
func ResolveCategory(name string) Category {
	for _, c := range Categories {
		if c.Name == name {
			return c
		}
	}
	return Fallback
}
