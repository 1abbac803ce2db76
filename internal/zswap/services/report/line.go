package report

// Line is one row of the report: either an Item or a Separator.
type Line interface {
	isLine()
}

// Item is a labelled value.
type Item struct {
	Label string
	Value string
}

// Separator renders as an empty line.
type Separator struct{}

func (Item) isLine()      {}
func (Separator) isLine() {}
