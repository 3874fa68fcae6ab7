package hval

// Grid is an ordered table of dict rows. Columns are the union of row tag
// names in first-seen order.
type Grid struct {
	cols    []string
	colSeen map[string]struct{}
	rows    []*Dict
}

// NewGrid returns a grid holding the given rows.
func NewGrid(rows ...*Dict) *Grid {
	g := &Grid{colSeen: make(map[string]struct{})}
	for _, row := range rows {
		g.Add(row)
	}
	return g
}

// Add appends a row. Nil rows are ignored.
func (g *Grid) Add(row *Dict) {
	if row == nil {
		return
	}
	if g.colSeen == nil {
		g.colSeen = make(map[string]struct{})
	}
	g.rows = append(g.rows, row)
	for _, name := range row.Names() {
		if _, ok := g.colSeen[name]; !ok {
			g.colSeen[name] = struct{}{}
			g.cols = append(g.cols, name)
		}
	}
}

// Rows returns the rows in order.
func (g *Grid) Rows() []*Dict {
	if g == nil {
		return nil
	}
	return g.rows
}

// Row returns the i-th row.
func (g *Grid) Row(i int) *Dict { return g.rows[i] }

// Len returns the number of rows.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// Cols returns the unioned column names.
func (g *Grid) Cols() []string {
	if g == nil {
		return nil
	}
	return g.cols
}

func (*Grid) Kind() Kind { return KindGrid }

func (g *Grid) String() string {
	return "<grid " + List(g.values()).String() + ">"
}

func (g *Grid) values() []Value {
	vals := make([]Value, len(g.rows))
	for i, row := range g.rows {
		vals[i] = row
	}
	return vals
}

// Equal reports whether other is a grid with equal rows in the same order.
func (g *Grid) Equal(other Value) bool {
	o, ok := other.(*Grid)
	if !ok || o.Len() != g.Len() {
		return false
	}
	for i := range g.rows {
		if !g.rows[i].Equal(o.rows[i]) {
			return false
		}
	}
	return true
}
