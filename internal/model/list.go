package model

import (
	"errors"
	"strings"
)

// UnassignedListID is the reserved fallback list. It always exists,
// cannot be deleted, and owns every task whose own list disappears.
const UnassignedListID = "list_inbox"

type List struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Locked bool   `json:"locked,omitempty"`
	System bool   `json:"system,omitempty"`
}

func UnassignedList() List {
	return List{ID: UnassignedListID, Name: "未归档", Locked: true, System: true}
}

func (l List) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("model: list id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("model: list name is required")
	}
	return nil
}

// FindList returns the list with the given id, if present.
func FindList(lists []List, id string) (List, bool) {
	for _, l := range lists {
		if l.ID == id {
			return l, true
		}
	}
	return List{}, false
}
