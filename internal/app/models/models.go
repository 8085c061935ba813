package models

// Role identifies which account store a credential belongs to.
type Role string

const (
	RoleAdministrator     Role = "administrator"
	RoleStudent           Role = "student"
	RoleGuidance          Role = "guidance"
	RoleHeadAdministrator Role = "headadministrator"
)

// AidStatus is the lifecycle state of an aid request.
type AidStatus string

const (
	StatusPending  AidStatus = "Pending"
	StatusAccepted AidStatus = "Accepted"
	StatusDeclined AidStatus = "Declined"
)

// Terminal reports whether no further transition is allowed from s.
func (s AidStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

// NotProvided is the placeholder stored for optional student contact fields.
const NotProvided = "Not Provided"

// AidTypes are the options offered at submission time. The value doubles as
// the routing department key for review.
var AidTypes = []string{"Hostel", "Counselling", "Finance"}

// GuidanceDepartments are the options offered when editing a guidance
// account. The set is not identical to AidTypes: "Counseling" is spelled
// differently and "Scholarship" has no matching aid type. Both sets are
// carried over from the legacy data files verbatim; requests routed to the
// odd ones out can never pass the department gate.
var GuidanceDepartments = []string{"Finance", "Scholarship", "Hostel", "Counseling"}

// ValidAidType reports whether t is one of the submission options.
func ValidAidType(t string) bool {
	for _, v := range AidTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidGuidanceDepartment reports whether d is one of the guidance options.
func ValidGuidanceDepartment(d string) bool {
	for _, v := range GuidanceDepartments {
		if v == d {
			return true
		}
	}
	return false
}
