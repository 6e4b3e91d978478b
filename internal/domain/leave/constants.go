package leave

const (
	TypeVacation  = "vacation"
	TypeSick      = "sick"
	TypeMaternity = "maternity"
	TypeEmergency = "emergency"
)

const (
	StatusPending    = "pending"
	StatusHRApproved = "hr-approved"
	StatusVPApproved = "vp-approved"
	StatusITApproved = "it-approved"
	StatusRejected   = "rejected"
)

const (
	StepHRAdmin = "hr-admin"
	StepVPOps   = "vp-ops"
	StepITHead  = "it-head"
)

const (
	StepPending  = "pending"
	StepApproved = "approved"
	StepRejected = "rejected"
)

const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

var Types = []string{TypeVacation, TypeSick, TypeMaternity, TypeEmergency}

// ApprovalChain is the fixed, ordered approval sequence. The role set is
// closed and the order is invariant, so it is an enumeration, not a graph.
var ApprovalChain = [3]string{StepHRAdmin, StepVPOps, StepITHead}

// statusAfterApproval maps an approved step to the request's overall status.
var statusAfterApproval = map[string]string{
	StepHRAdmin: StatusHRApproved,
	StepVPOps:   StatusVPApproved,
	StepITHead:  StatusITApproved,
}
