// Package models holds the domain records served by SafeWalk: emergency
// contacts, safety reports, feature settings and alert results.
package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/common"
)

// Relationship labels a contact. The set is closed.
type Relationship string

const (
	RelationshipFamily   Relationship = "Family"
	RelationshipFriend   Relationship = "Friend"
	RelationshipSecurity Relationship = "Security"
	RelationshipOther    Relationship = "Other"
)

// Relationships lists the accepted labels in display order.
var Relationships = []Relationship{
	RelationshipFamily,
	RelationshipFriend,
	RelationshipSecurity,
	RelationshipOther,
}

// ParseRelationship matches s case-insensitively against Relationships.
// An empty value yields the default, Friend.
func ParseRelationship(s string) (Relationship, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Relationship(common.DefaultRelationship), nil
	}
	for _, r := range Relationships {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", common.NewValidationError("relationship", "unknown relationship "+`"`+s+`"`)
}

// Contact is an emergency contact owned by a single session.
type Contact struct {
	ID           int64        `json:"id"`
	OwnerID      string       `json:"-"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Relationship Relationship `json:"relationship"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewContact validates the user-supplied fields and returns an unsaved contact.
func NewContact(ownerID, name, phone, relationship string) (*Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return nil, common.NewValidationError("name", "must not be empty")
	}
	if phone == "" {
		return nil, common.NewValidationError("phone", "must not be empty")
	}

	rel, err := ParseRelationship(relationship)
	if err != nil {
		return nil, err
	}

	return &Contact{OwnerID: ownerID, Name: name, Phone: phone, Relationship: rel}, nil
}
