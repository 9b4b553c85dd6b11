package models

type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (t Tag) Clone() Tag {
	return t
}

type TagUpdate struct {
	Name        *string
	Description *string
}

func (upd TagUpdate) Apply(t *Tag) {
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
}
