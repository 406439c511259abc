package listing

import "time"

// Listing is one business-for-sale record. The numeric ID is storage-internal;
// RefID is the external identifier and never changes once assigned.
type Listing struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RefID            string    `gorm:"column:ref_id;uniqueIndex" json:"ref_id"`
	Title            string    `json:"title"`
	BusinessName     string    `json:"business_name"`
	Availability     string    `json:"availability"`
	CreationDatetime time.Time `gorm:"column:creation_datetime" json:"creation_datetime"`

	// Business overview
	BusinessType     string     `json:"business_type"`
	Industry         StringList `gorm:"type:text" json:"industry"`
	Label            StringList `gorm:"type:text" json:"label"`
	FoundationDate   Date       `json:"foundation_date"`
	NumberOfPartners int        `json:"number_of_partners"`

	// Location and premises
	Location               string  `json:"location"`
	Address                string  `json:"address"`
	BusinessSitus          string  `json:"business_situs"`
	BusinessSitusOwnerType string  `json:"business_situs_owner_type"`
	Size                   float64 `json:"size"`

	// Financials
	Price                 float64 `json:"price"`
	MinPrice              float64 `json:"min_price"`
	PriceIncludeInventory bool    `json:"price_include_inventory"`
	Deposit               float64 `json:"deposit"`
	FirstInstallment      float64 `json:"first_installment"`
	Profit                float64 `json:"profit"`
	Turnover              float64 `json:"turnover"`

	// Operational costs
	Rent                   float64 `json:"rent"`
	RenewalRent            float64 `json:"renewal_rent"`
	MerchandiseCost        float64 `json:"merchandise_cost"`
	ElectricityBill        float64 `json:"electricity_bill"`
	WaterBill              float64 `json:"water_bill"`
	ManagementFee          float64 `json:"management_fee"`
	AirConditioningFee     float64 `json:"air_conditioning_fee"`
	RatesAndGovernmentRent float64 `json:"rates_and_government_rent"`
	RenovationAndEquipment float64 `json:"renovation_and_equipment"`
	OtherExpense           float64 `json:"other_expense"`

	// Staff
	NumberOfStaff int     `json:"number_of_staff"`
	StaffSalary   float64 `json:"staff_salary"`
	StaffRemain   string  `json:"staff_remain"`
	MPF           float64 `gorm:"column:mpf" json:"mpf"`

	// Business details
	MainProductService           StringList `gorm:"type:text" json:"main_product_service"`
	MainProductServicePercentage FloatList  `gorm:"type:text" json:"main_product_service_percentage"`
	BusinessHours                string     `json:"business_hours"`
	License                      StringList `gorm:"type:text" json:"license"`

	// Lease
	LeaseTerm       float64 `json:"lease_term"`
	LeaseExpiryDate Date    `json:"lease_expiry_date"`

	// Transfer details
	TransferMethod StringList `gorm:"type:text" json:"transfer_method"`
	Reason         StringList `gorm:"type:text" json:"reason"`
	Involvement    StringList `gorm:"type:text" json:"involvement"`

	// Contact
	Agent           string `json:"agent"`
	ClientName      string `json:"client_name"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	MeetingLocation string `json:"meeting_location"`

	Description StringList `gorm:"type:text" json:"description"`
}

func (Listing) TableName() string {
	return "business_listings"
}
