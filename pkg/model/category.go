package model

// Category is the functional class assigned to a gene by the upstream annotation.
type Category int

const (
	CategoryOther Category = iota
	CategoryCAZyme
	CategoryTC
	CategoryTF
	CategorySTP
)

// Categories that carry a composition slot, in counter order.
var SignatureCategories = [...]Category{CategoryCAZyme, CategoryTC, CategoryTF, CategorySTP}

func (c Category) String() string {
	switch c {
	case CategoryCAZyme:
		return "CAZyme"
	case CategoryTC:
		return "TC"
	case CategoryTF:
		return "TF"
	case CategorySTP:
		return "STP"
	default:
		return NullField
	}
}

// ParseCategory maps an annotation label onto a Category.
// Labels are case sensitive; anything unrecognised is CategoryOther.
func ParseCategory(label string) Category {
	switch label {
	case "CAZyme":
		return CategoryCAZyme
	case "TC":
		return CategoryTC
	case "TF":
		return CategoryTF
	case "STP":
		return CategorySTP
	default:
		return CategoryOther
	}
}
