package kernel

// PlaceHolder is a zero-filled byte range reserved in a Writer buffer and backfilled later.
type PlaceHolder struct {
	tag   string
	pos   int // insertion index in the field list
	start int
	end   int // exclusive
}

// Tag returns the unique key of the placeholder.
func (p PlaceHolder) Tag() string { return p.tag }

// Pos returns the field list position the backfilled field is inserted at.
func (p PlaceHolder) Pos() int { return p.pos }

// Start returns the first reserved byte offset.
func (p PlaceHolder) Start() int { return p.start }

// End returns the exclusive end byte offset.
func (p PlaceHolder) End() int { return p.end }

// Capacity returns the number of reserved bytes.
func (p PlaceHolder) Capacity() int { return p.end - p.start }
