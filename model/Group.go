package model

import (
	"strings"

	"github.com/gosimple/slug"
)

const MaxGroupNameLength = 255

type Group struct {
	Name        string
	Slug        string
	Description string
	Private     bool
	OwnerUid    int64
	MemberCount int64
	CreatedAt   int64
	UpdatedAt   int64
}

// GroupSlug reserves a slug for exactly one group name.
type GroupSlug struct {
	Slug string
	Name string
}

func (g *Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return NewInputError("name", "can't be blank")
	}

	if len(g.Name) > MaxGroupNameLength {
		return NewInputError("name", "is too long")
	}

	if strings.Contains(g.Name, "/") {
		return NewInputError("name", "can't contain '/'")
	}

	if g.Slug == "" {
		return NewInputError("name", "must contain at least one letter or digit")
	}

	return nil
}

func (g *Group) MakeSlug() {
	g.Slug = MakeSlug(g.Name)
}

func (g Group) Path() string {
	return GroupPath(g.Name)
}

func MakeSlug(s string) string {
	return slug.Make(s)
}

// GroupPath is the relative url of a group's page, used as notification path.
func GroupPath(groupName string) string {
	return "/groups/" + MakeSlug(groupName)
}

// Keys of the per-group sets kept in the Set table.
func PendingSetKey(groupName string) string {
	return "group:" + groupName + ":pending"
}

func InvitedSetKey(groupName string) string {
	return "group:" + groupName + ":invited"
}

func OwnersSetKey(groupName string) string {
	return "group:" + groupName + ":owners"
}
