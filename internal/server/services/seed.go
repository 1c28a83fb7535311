package services

import (
	"time"

	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

var demoContacts = []struct {
	name         string
	phone        string
	relationship models.Relationship
}{
	{"Mom", "+1 (555) 123-4567", models.RelationshipFamily},
	{"Sarah (Roommate)", "+1 (555) 987-6543", models.RelationshipFriend},
	{"Campus Security", "+1 (555) 555-0911", models.RelationshipSecurity},
}

// demoReports are listed oldest first so that IDs follow creation time.
var demoReports = []struct {
	category    models.Category
	description string
	location    string
	age         time.Duration
}{
	{models.CategorySafeArea, "Well lit area", "University District", 24 * time.Hour},
	{models.CategorySuspiciousActivity, "Suspicious activity", "Park Avenue", 5 * time.Hour},
	{models.CategoryPoorLighting, "Poor lighting", "Main St & 5th Ave", 2 * time.Hour},
}
