package httpdto

import (
	"bizlist/internal/domain/listing"
)

// ListingCreate is the creation payload. Every field must be present in the
// body (pointer + required mirrors "key must exist, zero values allowed").
// ref_id, id and creation_datetime are server-assigned and not accepted here.
type ListingCreate struct {
	Title        *string `json:"title" binding:"required"`
	BusinessName *string `json:"business_name" binding:"required"`
	Availability *string `json:"availability" binding:"required"`

	BusinessType     *string       `json:"business_type" binding:"required"`
	Industry         []string      `json:"industry" binding:"required"`
	Label            []string      `json:"label" binding:"required"`
	FoundationDate   *listing.Date `json:"foundation_date" binding:"required"`
	NumberOfPartners *int          `json:"number_of_partners" binding:"required"`

	Location               *string  `json:"location" binding:"required"`
	Address                *string  `json:"address" binding:"required"`
	BusinessSitus          *string  `json:"business_situs" binding:"required"`
	BusinessSitusOwnerType *string  `json:"business_situs_owner_type" binding:"required"`
	Size                   *float64 `json:"size" binding:"required"`

	Price                 *float64 `json:"price" binding:"required"`
	MinPrice              *float64 `json:"min_price" binding:"required"`
	PriceIncludeInventory *bool    `json:"price_include_inventory" binding:"required"`
	Deposit               *float64 `json:"deposit" binding:"required"`
	FirstInstallment      *float64 `json:"first_installment" binding:"required"`
	Profit                *float64 `json:"profit" binding:"required"`
	Turnover              *float64 `json:"turnover" binding:"required"`

	Rent                   *float64 `json:"rent" binding:"required"`
	RenewalRent            *float64 `json:"renewal_rent" binding:"required"`
	MerchandiseCost        *float64 `json:"merchandise_cost" binding:"required"`
	ElectricityBill        *float64 `json:"electricity_bill" binding:"required"`
	WaterBill              *float64 `json:"water_bill" binding:"required"`
	ManagementFee          *float64 `json:"management_fee" binding:"required"`
	AirConditioningFee     *float64 `json:"air_conditioning_fee" binding:"required"`
	RatesAndGovernmentRent *float64 `json:"rates_and_government_rent" binding:"required"`
	RenovationAndEquipment *float64 `json:"renovation_and_equipment" binding:"required"`
	OtherExpense           *float64 `json:"other_expense" binding:"required"`

	NumberOfStaff *int     `json:"number_of_staff" binding:"required"`
	StaffSalary   *float64 `json:"staff_salary" binding:"required"`
	StaffRemain   *string  `json:"staff_remain" binding:"required"`
	MPF           *float64 `json:"mpf" binding:"required"`

	MainProductService           []string  `json:"main_product_service" binding:"required"`
	MainProductServicePercentage []float64 `json:"main_product_service_percentage" binding:"required"`
	BusinessHours                *string   `json:"business_hours" binding:"required"`
	License                      []string  `json:"license" binding:"required"`

	LeaseTerm       *float64      `json:"lease_term" binding:"required"`
	LeaseExpiryDate *listing.Date `json:"lease_expiry_date" binding:"required"`

	TransferMethod []string `json:"transfer_method" binding:"required"`
	Reason         []string `json:"reason" binding:"required"`
	Involvement    []string `json:"involvement" binding:"required"`

	Agent           *string `json:"agent" binding:"required"`
	ClientName      *string `json:"client_name" binding:"required"`
	Mobile          *string `json:"mobile" binding:"required"`
	Email           *string `json:"email" binding:"required"`
	MeetingLocation *string `json:"meeting_location" binding:"required"`

	Description []string `json:"description" binding:"required"`
}

// ToEntity copies the payload into a Listing. ref_id and creation_datetime
// are left for the service to assign.
func (p *ListingCreate) ToEntity() listing.Listing {
	return listing.Listing{
		Title:        *p.Title,
		BusinessName: *p.BusinessName,
		Availability: *p.Availability,

		BusinessType:     *p.BusinessType,
		Industry:         listing.StringList(p.Industry),
		Label:            listing.StringList(p.Label),
		FoundationDate:   *p.FoundationDate,
		NumberOfPartners: *p.NumberOfPartners,

		Location:               *p.Location,
		Address:                *p.Address,
		BusinessSitus:          *p.BusinessSitus,
		BusinessSitusOwnerType: *p.BusinessSitusOwnerType,
		Size:                   *p.Size,

		Price:                 *p.Price,
		MinPrice:              *p.MinPrice,
		PriceIncludeInventory: *p.PriceIncludeInventory,
		Deposit:               *p.Deposit,
		FirstInstallment:      *p.FirstInstallment,
		Profit:                *p.Profit,
		Turnover:              *p.Turnover,

		Rent:                   *p.Rent,
		RenewalRent:            *p.RenewalRent,
		MerchandiseCost:        *p.MerchandiseCost,
		ElectricityBill:        *p.ElectricityBill,
		WaterBill:              *p.WaterBill,
		ManagementFee:          *p.ManagementFee,
		AirConditioningFee:     *p.AirConditioningFee,
		RatesAndGovernmentRent: *p.RatesAndGovernmentRent,
		RenovationAndEquipment: *p.RenovationAndEquipment,
		OtherExpense:           *p.OtherExpense,

		NumberOfStaff: *p.NumberOfStaff,
		StaffSalary:   *p.StaffSalary,
		StaffRemain:   *p.StaffRemain,
		MPF:           *p.MPF,

		MainProductService:           listing.StringList(p.MainProductService),
		MainProductServicePercentage: listing.FloatList(p.MainProductServicePercentage),
		BusinessHours:                *p.BusinessHours,
		License:                      listing.StringList(p.License),

		LeaseTerm:       *p.LeaseTerm,
		LeaseExpiryDate: *p.LeaseExpiryDate,

		TransferMethod: listing.StringList(p.TransferMethod),
		Reason:         listing.StringList(p.Reason),
		Involvement:    listing.StringList(p.Involvement),

		Agent:           *p.Agent,
		ClientName:      *p.ClientName,
		Mobile:          *p.Mobile,
		Email:           *p.Email,
		MeetingLocation: *p.MeetingLocation,

		Description: listing.StringList(p.Description),
	}
}

// ListingUpdate is the partial update payload. Only fields present in the
// body are applied. It deliberately has no ref_id, id or creation_datetime.
type ListingUpdate struct {
	Title        *string `json:"title"`
	BusinessName *string `json:"business_name"`
	Availability *string `json:"availability"`

	BusinessType     *string       `json:"business_type"`
	Industry         *[]string     `json:"industry"`
	Label            *[]string     `json:"label"`
	FoundationDate   *listing.Date `json:"foundation_date"`
	NumberOfPartners *int          `json:"number_of_partners"`

	Location               *string  `json:"location"`
	Address                *string  `json:"address"`
	BusinessSitus          *string  `json:"business_situs"`
	BusinessSitusOwnerType *string  `json:"business_situs_owner_type"`
	Size                   *float64 `json:"size"`

	Price                 *float64 `json:"price"`
	MinPrice              *float64 `json:"min_price"`
	PriceIncludeInventory *bool    `json:"price_include_inventory"`
	Deposit               *float64 `json:"deposit"`
	FirstInstallment      *float64 `json:"first_installment"`
	Profit                *float64 `json:"profit"`
	Turnover              *float64 `json:"turnover"`

	Rent                   *float64 `json:"rent"`
	RenewalRent            *float64 `json:"renewal_rent"`
	MerchandiseCost        *float64 `json:"merchandise_cost"`
	ElectricityBill        *float64 `json:"electricity_bill"`
	WaterBill              *float64 `json:"water_bill"`
	ManagementFee          *float64 `json:"management_fee"`
	AirConditioningFee     *float64 `json:"air_conditioning_fee"`
	RatesAndGovernmentRent *float64 `json:"rates_and_government_rent"`
	RenovationAndEquipment *float64 `json:"renovation_and_equipment"`
	OtherExpense           *float64 `json:"other_expense"`

	NumberOfStaff *int     `json:"number_of_staff"`
	StaffSalary   *float64 `json:"staff_salary"`
	StaffRemain   *string  `json:"staff_remain"`
	MPF           *float64 `json:"mpf"`

	MainProductService           *[]string  `json:"main_product_service"`
	MainProductServicePercentage *[]float64 `json:"main_product_service_percentage"`
	BusinessHours                *string    `json:"business_hours"`
	License                      *[]string  `json:"license"`

	LeaseTerm       *float64      `json:"lease_term"`
	LeaseExpiryDate *listing.Date `json:"lease_expiry_date"`

	TransferMethod *[]string `json:"transfer_method"`
	Reason         *[]string `json:"reason"`
	Involvement    *[]string `json:"involvement"`

	Agent           *string `json:"agent"`
	ClientName      *string `json:"client_name"`
	Mobile          *string `json:"mobile"`
	Email           *string `json:"email"`
	MeetingLocation *string `json:"meeting_location"`

	Description *[]string `json:"description"`
}

// Changes returns the set fields as a column -> value map ready for a partial
// update. List values go through the domain codec types so they are stored in
// the encoded form.
func (p *ListingUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}

	setStr := func(col string, v *string) {
		if v != nil {
			changes[col] = *v
		}
	}
	setFloat := func(col string, v *float64) {
		if v != nil {
			changes[col] = *v
		}
	}
	setInt := func(col string, v *int) {
		if v != nil {
			changes[col] = *v
		}
	}
	setList := func(col string, v *[]string) {
		if v != nil {
			changes[col] = listing.StringList(*v)
		}
	}
	setDate := func(col string, v *listing.Date) {
		if v != nil {
			changes[col] = *v
		}
	}

	setStr("title", p.Title)
	setStr("business_name", p.BusinessName)
	setStr("availability", p.Availability)
	setStr("business_type", p.BusinessType)
	setList("industry", p.Industry)
	setList("label", p.Label)
	setDate("foundation_date", p.FoundationDate)
	setInt("number_of_partners", p.NumberOfPartners)
	setStr("location", p.Location)
	setStr("address", p.Address)
	setStr("business_situs", p.BusinessSitus)
	setStr("business_situs_owner_type", p.BusinessSitusOwnerType)
	setFloat("size", p.Size)
	setFloat("price", p.Price)
	setFloat("min_price", p.MinPrice)
	if p.PriceIncludeInventory != nil {
		changes["price_include_inventory"] = *p.PriceIncludeInventory
	}
	setFloat("deposit", p.Deposit)
	setFloat("first_installment", p.FirstInstallment)
	setFloat("profit", p.Profit)
	setFloat("turnover", p.Turnover)
	setFloat("rent", p.Rent)
	setFloat("renewal_rent", p.RenewalRent)
	setFloat("merchandise_cost", p.MerchandiseCost)
	setFloat("electricity_bill", p.ElectricityBill)
	setFloat("water_bill", p.WaterBill)
	setFloat("management_fee", p.ManagementFee)
	setFloat("air_conditioning_fee", p.AirConditioningFee)
	setFloat("rates_and_government_rent", p.RatesAndGovernmentRent)
	setFloat("renovation_and_equipment", p.RenovationAndEquipment)
	setFloat("other_expense", p.OtherExpense)
	setInt("number_of_staff", p.NumberOfStaff)
	setFloat("staff_salary", p.StaffSalary)
	setStr("staff_remain", p.StaffRemain)
	setFloat("mpf", p.MPF)
	setList("main_product_service", p.MainProductService)
	if p.MainProductServicePercentage != nil {
		changes["main_product_service_percentage"] = listing.FloatList(*p.MainProductServicePercentage)
	}
	setStr("business_hours", p.BusinessHours)
	setList("license", p.License)
	setFloat("lease_term", p.LeaseTerm)
	setDate("lease_expiry_date", p.LeaseExpiryDate)
	setList("transfer_method", p.TransferMethod)
	setList("reason", p.Reason)
	setList("involvement", p.Involvement)
	setStr("agent", p.Agent)
	setStr("client_name", p.ClientName)
	setStr("mobile", p.Mobile)
	setStr("email", p.Email)
	setStr("meeting_location", p.MeetingLocation)
	setList("description", p.Description)

	return changes
}

// ListingItemView is the reduced projection used by list and search responses.
type ListingItemView struct {
	RefID       string             `json:"ref_id"`
	Title       string             `json:"title"`
	Label       listing.StringList `json:"label"`
	Involvement listing.StringList `json:"involvement"`
	Industry    listing.StringList `json:"industry"`
	Location    string             `json:"location"`
	Size        float64            `json:"size"`
	Price       float64            `json:"price"`
	Turnover    float64            `json:"turnover"`
}

func NewListingItemView(l listing.Listing) ListingItemView {
	return ListingItemView{
		RefID:       l.RefID,
		Title:       l.Title,
		Label:       l.Label,
		Involvement: l.Involvement,
		Industry:    l.Industry,
		Location:    l.Location,
		Size:        l.Size,
		Price:       l.Price,
		Turnover:    l.Turnover,
	}
}

// ListingInfoView is the detail-style projection.
type ListingInfoView struct {
	RefID          string             `json:"ref_id"`
	Title          string             `json:"title"`
	Label          listing.StringList `json:"label"`
	Involvement    listing.StringList `json:"involvement"`
	Industry       listing.StringList `json:"industry"`
	Location       string             `json:"location"`
	BusinessSitus  string             `json:"business_situs"`
	Size           float64            `json:"size"`
	Price          float64            `json:"price"`
	Turnover       float64            `json:"turnover"`
	TransferMethod listing.StringList `json:"transfer_method"`
	Profit         float64            `json:"profit"`
	Reason         listing.StringList `json:"reason"`
	License        listing.StringList `json:"license"`
	Rent           float64            `json:"rent"`
	Description    listing.StringList `json:"description"`
}

func NewListingInfoView(l listing.Listing) ListingInfoView {
	return ListingInfoView{
		RefID:          l.RefID,
		Title:          l.Title,
		Label:          l.Label,
		Involvement:    l.Involvement,
		Industry:       l.Industry,
		Location:       l.Location,
		BusinessSitus:  l.BusinessSitus,
		Size:           l.Size,
		Price:          l.Price,
		Turnover:       l.Turnover,
		TransferMethod: l.TransferMethod,
		Profit:         l.Profit,
		Reason:         l.Reason,
		License:        l.License,
		Rent:           l.Rent,
		Description:    l.Description,
	}
}

// SearchQuery binds the /businesses/search query string. All filters are
// optional and combined with AND.
type SearchQuery struct {
	Keyword     *string  `form:"keyword"`
	MinPrice    *float64 `form:"min_price"`
	MaxPrice    *float64 `form:"max_price"`
	MinTurnover *float64 `form:"min_turnover"`
	MaxTurnover *float64 `form:"max_turnover"`
	Location    *string  `form:"location"`
	Industry    *string  `form:"industry"`
	Skip        int      `form:"skip,default=0"`
	Limit       int      `form:"limit,default=10"`
}

// PageQuery binds plain skip/limit pagination.
type PageQuery struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=100"`
}
