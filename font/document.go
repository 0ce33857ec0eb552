package font

const (
	// DefaultName is used by New when no name is given.
	DefaultName = "Untitled Font"
	// LoadedName is used by Load when the input carries no name.
	LoadedName = "Loaded Font"
)

// Document is a named font table.
//
// Document is a value: edits operate on a copy and publish the result.
type Document struct {
	Name  string
	Table Table
}

// New returns an empty document. Every slot is absent except slot 0, which
// holds an empty character.
func New(name string) Document {
	if name == "" {
		name = DefaultName
	}
	d := Document{Name: name}
	d.Table.Set(0, Character{})
	return d
}

// Rename returns d with its name replaced.
func (d Document) Rename(name string) Document {
	d.Name = name
	return d
}

// Snapshot returns an independent copy of d for readers such as exporters
// and savers.
func (d *Document) Snapshot() Document {
	return *d
}

// ensureSlotZero forces slot 0 to be defined.
func (d *Document) ensureSlotZero() {
	if !d.Table.Defined(0) {
		d.Table.Set(0, Character{})
	}
}
