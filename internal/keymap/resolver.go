package keymap

// Context names a group of bindings that are active together.
const (
	ContextGlobal = "global"
	ContextSheet  = "sheet"
	ContextMap    = "map"
	ContextDetail = "detail"
)

// Resolver maps key strings to actions within the active contexts.
type Resolver struct {
	scopes map[string]map[string]Action // context -> key -> action
}

// NewResolver indexes bindings by context. A key bound twice in the same
// context keeps its first action.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{scopes: make(map[string]map[string]Action)}
	for _, b := range bindings {
		scope, ok := r.scopes[b.Context]
		if !ok {
			scope = make(map[string]Action)
			r.scopes[b.Context] = scope
		}
		for _, k := range b.Keys {
			if _, taken := scope[k]; !taken {
				scope[k] = b.Action
			}
		}
	}
	return r
}

// Resolve returns the action for key in the first of contexts that binds
// it, or "" when none does.
func (r *Resolver) Resolve(key string, contexts ...string) Action {
	for _, ctx := range contexts {
		if a, ok := r.scopes[ctx][key]; ok {
			return a
		}
	}
	return ""
}

// Active returns the contexts in lookup order for the frontmost component.
func Active(detailUp bool) []string {
	if detailUp {
		return []string{ContextDetail, ContextMap, ContextGlobal}
	}
	return []string{ContextSheet, ContextMap, ContextGlobal}
}
