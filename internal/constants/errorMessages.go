package constants

const (
	StatusError          = "Error"
	StatusTireCreated    = "Tire registered in stock"
	StatusTireAssigned   = "Tire assigned to position"
	StatusTireSwapped    = "Positions swapped"
	StatusTireUnassigned = "Tire removed from position"
)

const (
	MsgVehicleNotFound = "Vehicle not found"
	MsgTireNotFound    = "Tire not found"
	MsgStateChanged    = "State changed, reload and retry"
	MsgInvalidPayload  = "Invalid request payload"
)
