package commission

import "errors"

var (
	ErrStructureNotFound     = errors.New("commission structure not found")
	ErrStructureAssigned     = errors.New("commission structure still assigned to staff; deactivate instead")
	ErrStructureInactive     = errors.New("commission structure is inactive")
	ErrAssignmentNotFound    = errors.New("commission assignment not found")
	ErrAssignmentExists      = errors.New("staff member already assigned to this structure")
	ErrNoStructureForStaff   = errors.New("no active commission structure assigned to staff member")
	ErrNoTierMatch           = errors.New("service value not covered by any tier")
	ErrAmbiguousTiers        = errors.New("service value covered by more than one tier")
	ErrCategoryNotApplicable = errors.New("structure does not apply to this service category")
)
