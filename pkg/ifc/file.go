package ifc

// File is an ordered pool of IFC entity instances. Instance ids are
// assigned in insertion order starting at 1, matching the #N ids the
// STEP writer emits.
type File struct {
	entities []Entity
}

// NewFile returns an empty file.
func NewFile() *File {
	return &File{}
}

// Add appends e to the pool and returns its reference.
func (f *File) Add(e Entity) Ref {
	f.entities = append(f.entities, e)
	return Ref(len(f.entities))
}

// Get returns the entity behind r, or nil for the null reference or an
// out-of-range id.
func (f *File) Get(r Ref) Entity {
	if r < 1 || int(r) > len(f.entities) {
		return nil
	}
	return f.entities[r-1]
}

// Len returns the number of instances in the pool.
func (f *File) Len() int {
	return len(f.entities)
}
