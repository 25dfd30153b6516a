package dtos

// Engine operations

type AssignTireReq struct {
	Position            string `json:"position"`
	TireID              string `json:"tire_id"`
	OutgoingDisposition string `json:"outgoing_disposition,omitempty"`
}

type SwapTireReq struct {
	PositionA string `json:"position_a"`
	PositionB string `json:"position_b"`
}

type UnassignTireReq struct {
	Position    string `json:"position"`
	Disposition string `json:"disposition"`
}

type TireStatusChangeReq struct {
	Status string `json:"status"`
}

// Registry CRUD

type TireReq struct {
	Serial         string  `json:"serial"`
	Manufacturer   string  `json:"manufacturer"`
	Model          string  `json:"model"`
	OriginalTread  string  `json:"original_tread"`
	CurrentTread   string  `json:"current_tread"`
	Dimension      string  `json:"dimension"`
	Grooves        int     `json:"grooves"`
	Plies          int     `json:"plies"`
	DOTCode        string  `json:"dot_code"`
	ExpiresAt      string  `json:"expires_at,omitempty"`
	InitialReading int64   `json:"initial_reading"`
	FinalReading   *int64  `json:"final_reading,omitempty"`
	Supplier       string  `json:"supplier"`
	InvoiceNumber  string  `json:"invoice_number"`
	InvoiceSeries  string  `json:"invoice_series"`
	PurchasedAt    string  `json:"purchased_at,omitempty"`
	Cost           float64 `json:"cost"`
	Freight        float64 `json:"freight"`
	Incidentals    float64 `json:"incidentals"`
}

type VehicleReq struct {
	Plate    string `json:"plate"`
	Type     string `json:"type"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Color    string `json:"color"`
	Odometer int64  `json:"odometer"`
	Chassis  string `json:"chassis"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// Supporting records

type FuelLogReq struct {
	Date          string  `json:"date"`
	Odometer      int64   `json:"odometer"`
	Liters        float64 `json:"liters"`
	PricePerLiter float64 `json:"price_per_liter"`
	FuelType      string  `json:"fuel_type"`
	Station       string  `json:"station"`
	FullTank      *bool   `json:"full_tank,omitempty"`
}

type PartReplacementReq struct {
	PartName      string  `json:"part_name"`
	Supplier      string  `json:"supplier"`
	InvoiceNumber string  `json:"invoice_number"`
	Odometer      int64   `json:"odometer"`
	Cost          float64 `json:"cost"`
	Date          string  `json:"date"`
	Notes         string  `json:"notes"`
}

type InspectionReq struct {
	Date      string `json:"date"`
	Odometer  int64  `json:"odometer"`
	Items     string `json:"items"`
	Signature string `json:"signature"`
	Notes     string `json:"notes"`
}

// Auth / administration

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ApiKeyReq struct {
	Label string `json:"label"`
}

type OperatorReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active,omitempty"`
}
