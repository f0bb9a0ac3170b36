package model

// Category labels form a closed set. Behavior that varies by category lives in
// the lookup tables below rather than in membership checks scattered through
// the engine.
const (
	CatSalary           = "Salary"
	CatRent             = "Rent"
	CatBills            = "Bills"
	CatHomeKitchen      = "Home & Kitchen"
	CatGroceries        = "Groceries"
	CatEatingOut        = "Coffee & Eating Out"
	CatTakeaway         = "Takeaway"
	CatPets             = "Pets"
	CatBooks            = "Books"
	CatSelfCare         = "Self Care"
	CatHealth           = "Health"
	CatGym              = "Gym & Fitness"
	CatShopping         = "Shopping"
	CatBNPL             = "Buy Now Pay Later"
	CatCreditCard       = "Credit Card Payment"
	CatSubscriptions    = "Subscriptions"
	CatTransport        = "Transport"
	CatEntertainment    = "Entertainment"
	CatHobbies          = "Art & Hobbies"
	CatTech             = "Tech & Gadgets"
	CatTherapy          = "Therapy"
	CatCharity          = "Charity"
	CatPhone            = "Phone"
	CatBankFees         = "Bank Fees"
	CatInternalTransfer = "Internal Transfer"
	CatSavings          = "Savings"
	CatOther            = "Other"
)

// Categories lists every label in display order.
var Categories = []string{
	CatSalary, CatRent, CatBills, CatHomeKitchen,
	CatGroceries, CatEatingOut, CatTakeaway,
	CatPets, CatBooks, CatSelfCare, CatHealth,
	CatGym, CatShopping, CatBNPL,
	CatCreditCard, CatSubscriptions, CatTransport,
	CatEntertainment, CatHobbies, CatTech,
	CatTherapy, CatCharity, CatPhone, CatBankFees,
	CatInternalTransfer, CatSavings, CatOther,
}

// hiddenCategories are excluded from every budget total. The transactions are
// still stored; they are money shuffles, not spending.
var hiddenCategories = map[string]bool{
	CatInternalTransfer: true,
	CatSavings:          true,
}

// autoEssential categories default new transactions to essential.
var autoEssential = map[string]bool{
	CatRent:      true,
	CatBills:     true,
	CatGroceries: true,
	CatPets:      true,
	CatHealth:    true,
	CatTransport: true,
	CatPhone:     true,
}

var categoryColors = map[string]string{
	CatSalary:           "#22c55e",
	CatRent:             "#8b5cf6",
	CatBills:            "#7c3aed",
	CatHomeKitchen:      "#a78bfa",
	CatGroceries:        "#22c55e",
	CatEatingOut:        "#f59e0b",
	CatTakeaway:         "#f97316",
	CatPets:             "#ec4899",
	CatBooks:            "#06b6d4",
	CatSelfCare:         "#f472b6",
	CatHealth:           "#ef4444",
	CatGym:              "#10b981",
	CatShopping:         "#f97316",
	CatBNPL:             "#fb923c",
	CatCreditCard:       "#94a3b8",
	CatSubscriptions:    "#06b6d4",
	CatTransport:        "#3b82f6",
	CatEntertainment:    "#6366f1",
	CatHobbies:          "#a855f7",
	CatTech:             "#0ea5e9",
	CatTherapy:          "#e11d48",
	CatCharity:          "#f43f5e",
	CatPhone:            "#14b8a6",
	CatBankFees:         "#64748b",
	CatInternalTransfer: "#475569",
	CatSavings:          "#34d399",
	CatOther:            "#64748b",
}

const defaultColor = "#64748b"

// Hidden reports whether cat is excluded from budget totals.
func Hidden(cat string) bool { return hiddenCategories[cat] }

// AutoEssential reports whether cat defaults the essential flag on.
func AutoEssential(cat string) bool { return autoEssential[cat] }

// Color returns the display color for cat. Unknown categories get the default
// color rather than an error.
func Color(cat string) string {
	if c, ok := categoryColors[cat]; ok {
		return c
	}
	return defaultColor
}

// Known reports whether cat is in the closed label set.
func Known(cat string) bool {
	_, ok := categoryColors[cat]
	return ok
}
