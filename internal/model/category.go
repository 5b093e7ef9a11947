package model

// Request categories, in declaration order. The order is significant:
// keyword scoring breaks ties in favor of the earlier category.
const (
	CategoryVPN      = "VPN"
	CategoryEmail    = "Email"
	CategoryHardware = "Hardware"
	CategorySoftware = "Software"
	CategoryAccess   = "Access"
	CategoryNetwork  = "Network"
	CategoryOther    = "Other"
)

// Categories the closed category set in declaration order
var Categories = []string{
	CategoryVPN,
	CategoryEmail,
	CategoryHardware,
	CategorySoftware,
	CategoryAccess,
	CategoryNetwork,
	CategoryOther,
}

// departmentMapping category -> operator department
var departmentMapping = map[string]string{
	CategoryVPN:      "IT Security",
	CategoryEmail:    "IT Support",
	CategoryHardware: "IT Support",
	CategorySoftware: "IT Support",
	CategoryAccess:   "IT Security",
	CategoryNetwork:  "IT Infrastructure",
	CategoryOther:    "General Support",
}

// DepartmentFor routes a category to its department.
// Unmapped categories go to General Support.
func DepartmentFor(category string) string {
	if dept, ok := departmentMapping[category]; ok {
		return dept
	}
	return "General Support"
}

// ValidCategory reports whether the label belongs to the closed category set.
func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
