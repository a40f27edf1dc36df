package student

// Repository holds the in-memory collection. It does no I/O of its own;
// persistence is a separate step driven by the caller. Records keep their
// insertion order, which is also the order List returns them in.
type Repository struct {
	records []Student
	index   map[string]int
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{index: make(map[string]int)}
}

// Add inserts a record at the end of the collection. The collection is left
// untouched when the id is already present or the record is invalid.
func (r *Repository) Add(s Student) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := r.index[s.ID]; exists {
		return duplicate(s.ID)
	}
	r.index[s.ID] = len(r.records)
	r.records = append(r.records, s)
	return nil
}

// Find returns the record with the given id.
func (r *Repository) Find(id string) (Student, error) {
	i, exists := r.index[id]
	if !exists {
		return Student{}, notFound(id)
	}
	return r.records[i], nil
}

// Update applies ch to the record with the given id and returns the patched
// record.
func (r *Repository) Update(id string, ch Changes) (Student, error) {
	i, exists := r.index[id]
	if !exists {
		return Student{}, notFound(id)
	}
	ch.Apply(&r.records[i])
	return r.records[i], nil
}

// Delete removes the record with the given id, preserving the order of the
// remaining records.
func (r *Repository) Delete(id string) error {
	i, exists := r.index[id]
	if !exists {
		return notFound(id)
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.records); j++ {
		r.index[r.records[j].ID] = j
	}
	return nil
}

// List returns a copy of the collection in insertion order.
func (r *Repository) List() []Student {
	out := make([]Student, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records held.
func (r *Repository) Len() int {
	return len(r.records)
}

// Replace resets the repository from a loaded collection. Every record is
// validated and ids must be unique; on any error the repository keeps its
// previous contents.
func (r *Repository) Replace(records []Student) error {
	index := make(map[string]int, len(records))
	for i, s := range records {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, exists := index[s.ID]; exists {
			return duplicate(s.ID)
		}
		index[s.ID] = i
	}
	r.records = make([]Student, len(records))
	copy(r.records, records)
	r.index = index
	return nil
}
