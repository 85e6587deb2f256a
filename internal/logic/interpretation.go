package logic

import "fmt"

// ExtensionPredicates builds predicate interpretations from extensions:
// each predicate is true exactly for the listed elements. Elements are
// compared by dynamic type and printed value, so 2 and 2.0 differ.
func ExtensionPredicates(ext map[string][]any) Predicates {
	out := make(Predicates, len(ext))
	for name, members := range ext {
		set := make(map[string]struct{}, len(members))
		for _, m := range members {
			set[elementKey(m)] = struct{}{}
		}
		out[name] = func(v any) bool {
			_, ok := set[elementKey(v)]
			return ok
		}
	}
	return out
}

func elementKey(v any) string {
	return fmt.Sprintf("%T:%v", v, v)
}
