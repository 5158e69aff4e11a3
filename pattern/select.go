package pattern

// ChildMatchFunc reports whether a child-name qualifier resolves to the
// message's source component. Errors from child resolution (an unknown
// child name, for example) abort selection and propagate to the caller.
type ChildMatchFunc func(childName string) (bool, error)

// Best selects the single best-matching entry of a table for the given
// message name. The childMatch callback is consulted only for keys that
// carry a qualifier and whose pattern matches the name. Best never
// returns more than one entry; ok is false when nothing matches.
func Best[V any](table map[string]V, name string, childMatch ChildMatchFunc) (best Key, value V, ok bool, err error) {
	var zero V
	for raw, v := range table {
		key, perr := ParseKey(raw)
		if perr != nil {
			return Key{}, zero, false, perr
		}
		if !Match(key.Event, name) {
			continue
		}
		if key.Qualified() {
			if childMatch == nil {
				continue
			}
			matched, cerr := childMatch(key.Child)
			if cerr != nil {
				return Key{}, zero, false, cerr
			}
			if !matched {
				continue
			}
		}
		if !ok || key.outranks(best) {
			best, value, ok = key, v, true
		}
	}
	return best, value, ok, nil
}
