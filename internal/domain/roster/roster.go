// Package roster maps display names to stable player identities.
//
// The league runs with a fixed, closed set of players. Builders resolve
// participant names through a Registry; names that do not resolve are
// silently excluded from identifier-keyed output. That is the intended
// "known roster" filter, not an error condition.
package roster

// ID is a stable player identifier used as a JSON key in view models.
type ID string

// Member describes one tracked player.
type Member struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Registry resolves display names and fixes the canonical display order.
type Registry struct {
	members []Member
	byName  map[string]Member
}

// New builds a Registry from members. Order of the arguments is the
// canonical display order used by every builder.
func New(members ...Member) *Registry {
	r := &Registry{
		members: make([]Member, len(members)),
		byName:  make(map[string]Member, len(members)),
	}
	copy(r.members, members)
	for _, m := range members {
		r.byName[m.Name] = m
	}
	return r
}

// Default returns the current league roster.
func Default() *Registry {
	return New(
		Member{ID: "KIYO", Name: "きよ", Color: "#22c55e"},
		Member{ID: "YAMADA", Name: "やまだ", Color: "#60a5fa"},
		Member{ID: "KOTARO", Name: "こたろー", Color: "#f97316"},
		Member{ID: "REI", Name: "れい", Color: "#eab308"},
		Member{ID: "YOSHITANI", Name: "よしたに", Color: "#a78bfa"},
		Member{ID: "HINATA", Name: "ひなた", Color: "#f43f5e"},
	)
}

// Resolve looks up a member by display name.
func (r *Registry) Resolve(name string) (Member, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// Members returns the roster in canonical order.
func (r *Registry) Members() []Member {
	out := make([]Member, len(r.members))
	copy(out, r.members)
	return out
}

// Size returns the number of tracked players.
func (r *Registry) Size() int {
	return len(r.members)
}
