package constants

const (
	GetTireByID = `
	SELECT * FROM tires WHERE id = $1
	`

	GetTireByIDForUpdate = `
	SELECT * FROM tires WHERE id = $1 FOR UPDATE
	`

	GetTireBySerial = `
	SELECT * FROM tires WHERE serial = $1
	`

	GetTireAtPosition = `
	SELECT * FROM tires
	WHERE vehicle_id = $1 AND position_code = $2 AND status = 'in_use'
	FOR UPDATE
	`

	GetTiresByVehicle = `
	SELECT * FROM tires
	WHERE vehicle_id = $1 AND status = 'in_use'
	ORDER BY position_code
	`

	ListTires = `
	SELECT * FROM tires ORDER BY serial
	`

	InsertTire = `
	INSERT INTO tires (
		id, serial, manufacturer, model, original_tread, current_tread,
		dimension, grooves, plies, dot_code, expires_at,
		initial_reading, final_reading, recap_count,
		supplier, invoice_number, invoice_series, purchased_at,
		cost, freight, incidentals, status, vehicle_id, position_code, version
	) VALUES (
		:id, :serial, :manufacturer, :model, :original_tread, :current_tread,
		:dimension, :grooves, :plies, :dot_code, :expires_at,
		:initial_reading, :final_reading, :recap_count,
		:supplier, :invoice_number, :invoice_series, :purchased_at,
		:cost, :freight, :incidentals, :status, :vehicle_id, :position_code, 1
	)
	RETURNING created_at, updated_at, version
	`

	// Optimistic write: the WHERE version guard loses against any
	// concurrent writer, surfacing as zero rows affected.
	UpdateTire = `
	UPDATE tires SET
		serial = :serial,
		manufacturer = :manufacturer,
		model = :model,
		original_tread = :original_tread,
		current_tread = :current_tread,
		dimension = :dimension,
		grooves = :grooves,
		plies = :plies,
		dot_code = :dot_code,
		expires_at = :expires_at,
		initial_reading = :initial_reading,
		final_reading = :final_reading,
		recap_count = :recap_count,
		supplier = :supplier,
		invoice_number = :invoice_number,
		invoice_series = :invoice_series,
		purchased_at = :purchased_at,
		cost = :cost,
		freight = :freight,
		incidentals = :incidentals,
		status = :status,
		vehicle_id = :vehicle_id,
		position_code = :position_code,
		version = version + 1,
		updated_at = now()
	WHERE id = :id AND version = :version
	`

	DeleteTire = `
	DELETE FROM tires WHERE id = $1
	`

	GetVehicleByID = `
	SELECT * FROM vehicles WHERE id = $1
	`

	GetVehicleByPlate = `
	SELECT * FROM vehicles WHERE plate = $1
	`

	ListVehicles = `
	SELECT * FROM vehicles ORDER BY plate
	`

	InsertVehicle = `
	INSERT INTO vehicles (id, plate, type, make, model, year, color, odometer, chassis, is_active)
	VALUES (:id, :plate, :type, :make, :model, :year, :color, :odometer, :chassis, :is_active)
	RETURNING created_at, updated_at
	`

	UpdateVehicle = `
	UPDATE vehicles SET
		plate = :plate,
		type = :type,
		make = :make,
		model = :model,
		year = :year,
		color = :color,
		odometer = :odometer,
		chassis = :chassis,
		is_active = :is_active,
		updated_at = now()
	WHERE id = :id
	`

	GetStatusByApiKey = `
	SELECT id, label, status, created_at FROM api_keys WHERE id = $1
	`

	ListApiKeys = `
	SELECT id, label, status, created_at FROM api_keys ORDER BY created_at DESC
	`

	InsertApiKey = `
	INSERT INTO api_keys (id, label, status) VALUES ($1, $2, true)
	RETURNING id, label, status, created_at
	`

	SetApiKeyStatus = `
	UPDATE api_keys SET status = $2 WHERE id = $1
	`
)
