package queries

const (
	appointmentSelect = `
		SELECT 
			a.id,
			a.patient_id,
			TRIM(p.first_name || ' ' || p.last_name),
			a.doctor_id,
			TRIM(d.first_name || ' ' || d.last_name),
			a.clinic_id,
			a.appointment_date,
			TO_CHAR(a.appointment_time, 'HH24:MI:SS'),
			a.status,
			a.reason,
			a.notes,
			a.created_at,
			a.updated_at
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		JOIN doctors d ON d.id = a.doctor_id`

	appointmentFilterCondition = `
		WHERE ($1::text = '' OR a.status = $1)
		AND ($2::text = '' OR a.appointment_date::text = $2)
		AND ($3::bigint = 0 OR a.doctor_id = $3)
		AND ($4::bigint = 0 OR a.patient_id = $4)`

	InsertAppointment = `
		INSERT INTO appointments (
			patient_id,
			doctor_id,
			clinic_id,
			appointment_date,
			appointment_time,
			status,
			reason,
			notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	GetAppointmentByID = appointmentSelect + `
		WHERE a.id = $1
	`

	GetAllAppointments = appointmentSelect + appointmentFilterCondition + `
		ORDER BY a.appointment_date DESC, a.appointment_time DESC, a.id DESC
		LIMIT $5 OFFSET $6
	`

	CountAppointments = `
		SELECT COUNT(*)
		FROM appointments a` + appointmentFilterCondition

	GetActiveAppointmentsByDate = appointmentSelect + `
		WHERE a.appointment_date = $1
		AND a.status NOT IN ('Cancelled', 'No Show')
		AND ($2::bigint = 0 OR a.doctor_id = $2)
		AND ($3::bigint = 0 OR a.patient_id = $3)
		ORDER BY a.appointment_time, a.id
	`

	UpdateAppointment = `
		UPDATE appointments
		SET 
			doctor_id = $1,
			clinic_id = $2,
			appointment_date = $3,
			appointment_time = $4,
			status = $5,
			reason = $6,
			notes = $7,
			updated_at = NOW()
		WHERE id = $8
	`

	UpdateAppointmentStatus = `
		UPDATE appointments 
		SET status = $1, updated_at = NOW() 
		WHERE id = $2
	`

	// Slot holders are every status except Cancelled and No Show, matching appointments_active_slot_uidx.
	CountActiveAppointmentsBySlot = `
		SELECT COUNT(*) 
		FROM appointments 
		WHERE doctor_id = $1 
		AND appointment_date = $2 
		AND appointment_time = $3 
		AND status NOT IN ('Cancelled', 'No Show') 
		AND id <> $4
	`

	MarkAppointmentsNoShowBefore = `
		UPDATE appointments 
		SET status = 'No Show', updated_at = NOW() 
		WHERE status IN ('Scheduled', 'Confirmed') 
		AND (appointment_date + appointment_time) < $1::timestamp
		RETURNING id, patient_id, doctor_id, appointment_date, TO_CHAR(appointment_time, 'HH24:MI:SS')
	`
)
