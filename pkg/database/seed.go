package database

import (
	"errors"
	"fmt"
	"time"

	"bizlist/internal/domain/conversation"
	"bizlist/internal/domain/listing"

	"gorm.io/gorm"
)

// SeedResult summarises what a seeding run inserted.
type SeedResult struct {
	Listings      []*listing.Listing
	Conversations []*conversation.Conversation
}

// SeedDevelopment fills an empty database with a handful of listings and chat
// rows so the API and admin views have something to show. Listings are keyed
// by fixed ref ids and upserted by presence, so the seed is safe to re-run.
func SeedDevelopment(db *gorm.DB) (*SeedResult, error) {
	result := &SeedResult{}

	now := time.Now().UTC()
	for i, l := range devListings(now) {
		var existing listing.Listing
		err := db.Where("ref_id = ?", l.RefID).First(&existing).Error
		if err == nil {
			result.Listings = append(result.Listings, &existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check seed listing %d: %w", i, err)
		}
		if err := db.Create(l).Error; err != nil {
			return nil, fmt.Errorf("create seed listing %d: %w", i, err)
		}
		result.Listings = append(result.Listings, l)
	}

	for i, c := range devConversations(now) {
		if err := db.Create(c).Error; err != nil {
			return nil, fmt.Errorf("create seed conversation %d: %w", i, err)
		}
		result.Conversations = append(result.Conversations, c)
	}

	return result, nil
}

func devListings(now time.Time) []*listing.Listing {
	return []*listing.Listing{
		{
			RefID:            "DEV2400001",
			Title:            "Corner cafe with loyal morning crowd",
			BusinessName:     "Daybreak Coffee",
			Availability:     "available",
			BusinessType:     "F&B",
			Industry:         listing.StringList{"Food & Beverage"},
			Label:            listing.StringList{"featured"},
			Location:         "Shop - CWB",
			Size:             420,
			Price:            1800000,
			Turnover:         260000,
			Rent:             52000,
			Profit:           38000,
			Description:      listing.StringList{"street-level corner unit", "full kitchen"},
			License:          listing.StringList{"general restaurant"},
			Involvement:      listing.StringList{"full handover"},
			CreationDatetime: now,
		},
		{
			RefID:            "DEV2400002",
			Title:            "Established laundry, staff stays on",
			BusinessName:     "Fresh Press",
			Availability:     "available",
			BusinessType:     "services",
			Industry:         listing.StringList{"Services"},
			Label:            listing.StringList{},
			Location:         "Shop - MKK",
			Size:             280,
			Price:            650000,
			Turnover:         90000,
			Rent:             23000,
			Profit:           21000,
			Description:      listing.StringList{"walk-up customer base"},
			License:          listing.StringList{},
			Involvement:      listing.StringList{"part time"},
			CreationDatetime: now,
		},
	}
}

func devConversations(now time.Time) []*conversation.Conversation {
	return []*conversation.Conversation{
		{UserEmail: "buyer@example.com", Message: "Is the cafe still available?", Sender: "buyer", Timestamp: now.Add(-2 * time.Hour)},
		{UserEmail: "buyer@example.com", Message: "Yes, would you like a viewing?", Sender: "Admin", Timestamp: now.Add(-1 * time.Hour)},
	}
}
