package ignore

// Store is the ordered rule collection the engine evaluates. Insertion
// order is discovery order and is semantically significant: a later rule
// overrides an earlier one when both match. Rules are only ever appended,
// never removed or reordered.
type Store struct {
	rules []Rule
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a rule after all existing ones.
func (s *Store) Append(r Rule) {
	s.rules = append(s.rules, r)
}

// Rules returns the rules in evaluation order.
func (s *Store) Rules() []Rule {
	return s.rules
}

// Len returns the number of stored rules.
func (s *Store) Len() int {
	return len(s.rules)
}
