package cliargs

// ArgMatches is the result of a successful parse: the values recorded for
// each argument id, plus the nested result of the matched subcommand, if
// any. An id with no recorded values has no entry at all - an empty list is
// never stored.
//
// ArgMatches is populated during a single parse and must be treated as
// read-only once returned.
type ArgMatches struct {
	values  map[string][]string
	subName string
	sub     *ArgMatches
}

func newArgMatches() *ArgMatches {
	return &ArgMatches{values: make(map[string][]string)}
}

// GetOne returns the first value recorded for the given argument id, and
// whether any value was recorded at all.
func (m *ArgMatches) GetOne(id string) (string, bool) {
	if vs, ok := m.values[id]; ok {
		return vs[0], true
	}

	return "", false
}

// GetMany returns a copy of all values recorded for the given argument id
// in encounter order, and whether any value was recorded at all.
func (m *ArgMatches) GetMany(id string) ([]string, bool) {
	vs, ok := m.values[id]
	if !ok {
		return nil, false
	}

	var out = make([]string, len(vs))

	copy(out, vs)

	return out, true
}

// Has reports whether any value was recorded for the given argument id.
func (m *ArgMatches) Has(id string) bool { _, ok := m.values[id]; return ok }

// Subcommand returns the matched subcommand name and its nested matches,
// and whether a subcommand was matched at all.
func (m *ArgMatches) Subcommand() (string, *ArgMatches, bool) {
	return m.subName, m.sub, m.sub != nil
}
