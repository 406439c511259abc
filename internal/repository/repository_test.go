package repository

import (
	"testing"
	"time"

	"bizlist/internal/domain/conversation"
	"bizlist/internal/domain/listing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&listing.Listing{}, &conversation.Conversation{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

// testListing returns a fully populated record. Callers override what they
// need.
func testListing(refID string) listing.Listing {
	return listing.Listing{
		RefID:            refID,
		Title:            "Cafe for sale",
		BusinessName:     "Morning Brew",
		Availability:     "available",
		CreationDatetime: time.Date(2024, 7, 3, 10, 5, 0, 0, time.UTC),

		BusinessType:     "F&B",
		Industry:         listing.StringList{"Food & Beverage"},
		Label:            listing.StringList{"hot"},
		FoundationDate:   listing.NewDate(2015, time.April, 1),
		NumberOfPartners: 2,

		Location:               "Shop - CWB",
		Address:                "1 Yee Wo St",
		BusinessSitus:          "street level",
		BusinessSitusOwnerType: "landlord",
		Size:                   450,

		Price:                 1200000,
		MinPrice:              1000000,
		PriceIncludeInventory: true,
		Deposit:               100000,
		FirstInstallment:      50000,
		Profit:                30000,
		Turnover:              250000,

		Rent:                   45000,
		RenewalRent:            48000,
		MerchandiseCost:        20000,
		ElectricityBill:        3000,
		WaterBill:              800,
		ManagementFee:          2500,
		AirConditioningFee:     1200,
		RatesAndGovernmentRent: 4000,
		RenovationAndEquipment: 150000,
		OtherExpense:           1000,

		NumberOfStaff: 4,
		StaffSalary:   60000,
		StaffRemain:   "2 willing to stay",
		MPF:           3000,

		MainProductService:           listing.StringList{"coffee", "pastry"},
		MainProductServicePercentage: listing.FloatList{70, 30},
		BusinessHours:                "08:00-18:00",
		License:                      listing.StringList{"general restaurant"},

		LeaseTerm:       2,
		LeaseExpiryDate: listing.NewDate(2026, time.December, 31),

		TransferMethod: listing.StringList{"asset sale"},
		Reason:         listing.StringList{"emigration"},
		Involvement:    listing.StringList{"full handover"},

		Agent:           "Agent Chan",
		ClientName:      "Mr. Lee",
		Mobile:          "91234567",
		Email:           "lee@example.com",
		MeetingLocation: "on site",

		Description: listing.StringList{"busy corner cafe", "loyal customers"},
	}
}

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
