package model

// Composition counts the signature categories seen in one cluster candidate.
// It is a value: Add returns an updated copy and the zero value is an empty count.
type Composition struct {
	CAZyme int `json:"cazyme"`
	TC     int `json:"tc"`
	TF     int `json:"tf"`
	STP    int `json:"stp"`
}

func (c Composition) Add(cat Category) Composition {
	switch cat {
	case CategoryCAZyme:
		c.CAZyme++
	case CategoryTC:
		c.TC++
	case CategoryTF:
		c.TF++
	case CategorySTP:
		c.STP++
	}
	return c
}

// Count returns the number of genes of the given category.
func (c Composition) Count(cat Category) int {
	switch cat {
	case CategoryCAZyme:
		return c.CAZyme
	case CategoryTC:
		return c.TC
	case CategoryTF:
		return c.TF
	case CategorySTP:
		return c.STP
	default:
		return 0
	}
}

func (c Composition) Total() int {
	return c.CAZyme + c.TC + c.TF + c.STP
}
