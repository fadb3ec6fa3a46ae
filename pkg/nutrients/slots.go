package nutrients

import "fmt"

// Count is the number of tracked nutrients. Every Vector and every RDI table
// is index-aligned over exactly this many slots.
const Count = 48

// Category groups slots into the chart panels.
type Category int

const (
	General Category = iota
	Carbohydrates
	Fats
	Proteins
	Vitamins
	Minerals
	// Uncharted slots are computed and reported but belong to no panel.
	Uncharted
)

// Categories lists the charted categories in panel order.
var Categories = []Category{General, Carbohydrates, Fats, Proteins, Vitamins, Minerals}

func (c Category) String() string {
	switch c {
	case General:
		return "General"
	case Carbohydrates:
		return "Carbohydrates"
	case Fats:
		return "Fats"
	case Proteins:
		return "Proteins"
	case Vitamins:
		return "Vitamins"
	case Minerals:
		return "Minerals"
	case Uncharted:
		return "Uncharted"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

type Slot struct {
	Index    int
	Name     string
	Unit     string
	Category Category
}

// Header returns the dataset column header for the slot, e.g. "Protein (g)".
func (s Slot) Header() string {
	return s.Name + " (" + s.Unit + ")"
}

// Valine (23) sits between the Proteins and Vitamins panels and is drawn in
// neither.
var slots = [Count]Slot{
	{0, "Energy", "kcal", General},
	{1, "Water", "g", General},
	{2, "Caffeine", "mg", General},
	{3, "Alcohol", "g", General},
	{4, "Carbohydrate", "g", Carbohydrates},
	{5, "Fibre", "g", Carbohydrates},
	{6, "Starch", "g", Carbohydrates},
	{7, "Sugars", "g", Carbohydrates},
	{8, "Fat", "g", Fats},
	{9, "Monounsaturated fat", "g", Fats},
	{10, "Polyunsaturated fat", "g", Fats},
	{11, "Saturated fat", "g", Fats},
	{12, "Trans fat", "g", Fats},
	{13, "Cholesterol", "mg", Fats},
	{14, "Protein", "g", Proteins},
	{15, "Histidine", "g", Proteins},
	{16, "Isoleucine", "g", Proteins},
	{17, "Leucine", "g", Proteins},
	{18, "Lysine", "g", Proteins},
	{19, "Methionine", "g", Proteins},
	{20, "Phenylalanine", "g", Proteins},
	{21, "Threonine", "g", Proteins},
	{22, "Tryptophan", "g", Proteins},
	{23, "Valine", "g", Uncharted},
	{24, "Thiamin", "mg", Vitamins},
	{25, "Riboflavin", "mg", Vitamins},
	{26, "Niacin", "mg", Vitamins},
	{27, "Pantothenic acid", "mg", Vitamins},
	{28, "Vitamin B6", "mg", Vitamins},
	{29, "Folate", "µg", Vitamins},
	{30, "Vitamin B12", "µg", Vitamins},
	{31, "Choline", "mg", Vitamins},
	{32, "Vitamin A", "IU", Vitamins},
	{33, "Vitamin C", "mg", Vitamins},
	{34, "Vitamin D", "IU", Vitamins},
	{35, "Vitamin E", "mg", Vitamins},
	{36, "Vitamin K", "µg", Vitamins},
	{37, "Calcium", "mg", Minerals},
	{38, "Copper", "mg", Minerals},
	{39, "Iodine", "µg", Minerals},
	{40, "Iron", "mg", Minerals},
	{41, "Magnesium", "mg", Minerals},
	{42, "Manganese", "mg", Minerals},
	{43, "Phosphorus", "mg", Minerals},
	{44, "Potassium", "mg", Minerals},
	{45, "Selenium", "µg", Minerals},
	{46, "Sodium", "mg", Minerals},
	{47, "Zinc", "mg", Minerals},
}

var slotsByName map[string]int

func init() {
	slotsByName = make(map[string]int, Count)
	for _, s := range slots {
		slotsByName[s.Name] = s.Index
	}
}

// Slots returns all slots in dataset order.
func Slots() [Count]Slot {
	return slots
}

func SlotAt(i int) Slot {
	return slots[i]
}

// Lookup finds a slot by its bare name ("Protein") or header form ("Protein (g)").
func Lookup(name string) (Slot, bool) {
	if i, ok := slotsByName[name]; ok {
		return slots[i], true
	}
	for _, s := range slots {
		if s.Header() == name {
			return s, true
		}
	}
	return Slot{}, false
}

// InCategory returns the slots of c in dataset order.
func InCategory(c Category) []Slot {
	var out []Slot
	for _, s := range slots {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}
