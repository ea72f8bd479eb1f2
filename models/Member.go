package models

import "sort"

// Member represents one study-group member from the roster document (members.json)
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Github string `json:"github"`
}

// Roster maps a member id to its roster entry. The roster lives in the content
// store, not the identity provider, and is immutable at runtime.
type Roster map[string]RosterEntry

// RosterEntry is the stored shape of one roster row (the id is the map key)
type RosterEntry struct {
	Name   string `json:"name"`
	Github string `json:"github"`
}

// Members returns the roster as a slice sorted by member id so iteration
// order is deterministic
func (r Roster) Members() []Member {
	members := make([]Member, 0, len(r))
	for id, entry := range r {
		members = append(members, Member{ID: id, Name: entry.Name, Github: entry.Github})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members
}

// Has reports whether the given member id exists in the roster
func (r Roster) Has(id string) bool {
	_, ok := r[id]
	return ok
}
