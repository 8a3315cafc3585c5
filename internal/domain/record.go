package domain

import "time"

type CollectionKey string

const (
	CollectionOwners     CollectionKey = "owners"
	CollectionUsers      CollectionKey = "users"
	CollectionProperties CollectionKey = "properties"
)

func (k CollectionKey) Valid() bool {
	switch k {
	case CollectionOwners, CollectionUsers, CollectionProperties:
		return true
	default:
		return false
	}
}

type ModerationStatus string

const (
	StatusActive    ModerationStatus = "active"
	StatusBlocked   ModerationStatus = "blocked"
	StatusPending   ModerationStatus = "pending"
	StatusPublished ModerationStatus = "published"
)

func (s ModerationStatus) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusBlocked:
		return "Blocked"
	case StatusPending:
		return "Pending"
	case StatusPublished:
		return "Published"
	default:
		return string(s)
	}
}

type Address struct {
	Line1   string
	City    string
	State   string
	Pincode string
}

// Record is a client-side copy of one server entity. Identity is ID;
// every other field is a replaceable snapshot of server state.
type Record struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	AlternatePhone string
	Role           string
	Status         ModerationStatus
	CreatedAt      time.Time
	Address        Address
	Gender         string
	DateOfBirth    string
	Bio            string
	ProfileImage   string
}
