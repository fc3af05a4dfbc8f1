package entities

import "rpbot/internal/domain"

type ChannelKind int

const (
	ChannelText ChannelKind = iota
	ChannelCategory
	ChannelForum
)

// RoleSpec describes a role to create.
type RoleSpec struct {
	Name        string
	Permissions int64
	Reason      string
}

// ChannelSpec describes a channel or category to create.
type ChannelSpec struct {
	Name       string
	Kind       ChannelKind
	Position   int
	ParentID   string
	Overwrites []domain.Overwrite
	Reason     string
}

// Position places a role or channel in the guild ordering.
type Position struct {
	ID       string
	Position int
}
