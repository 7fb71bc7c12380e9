package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []struct {
		name  string
		query string
	}{
		{"create staff", `
			CREATE TABLE IF NOT EXISTS staff (
				id UUID PRIMARY KEY,
				email TEXT NOT NULL UNIQUE,
				password TEXT NOT NULL,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				is_active BOOLEAN NOT NULL DEFAULT true,
				school_start_time VARCHAR(10) NOT NULL DEFAULT '07:30',
				grace_period_minutes INT NOT NULL DEFAULT 0,
				pm_late_cutoff_enabled BOOLEAN NOT NULL DEFAULT false,
				pm_late_cutoff_time VARCHAR(10) NOT NULL DEFAULT '12:50',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"create students", `
			CREATE TABLE IF NOT EXISTS students (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL,
				matric_no TEXT NOT NULL UNIQUE,
				grade TEXT NOT NULL,
				staff_id UUID NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"create courses", `
			CREATE TABLE IF NOT EXISTS courses (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL,
				course_code TEXT NOT NULL,
				staff_id UUID NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"create student_courses", `
			CREATE TABLE IF NOT EXISTS student_courses (
				student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
				course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
				PRIMARY KEY (student_id, course_id)
			)`},
		{"create attendances", `
			CREATE TABLE IF NOT EXISTS attendances (
				id UUID PRIMARY KEY,
				staff_id UUID NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				date VARCHAR(10) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"index attendances staff_date", `
			CREATE INDEX IF NOT EXISTS idx_attendances_staff_date ON attendances (staff_id, date)`},
		{"create student_attendances", `
			CREATE TABLE IF NOT EXISTS student_attendances (
				id UUID PRIMARY KEY,
				student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
				attendance_id UUID NOT NULL REFERENCES attendances(id) ON DELETE CASCADE,
				time_type VARCHAR(3),
				session_type VARCHAR(2),
				status VARCHAR(10) NOT NULL,
				section TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"index student_attendances lookup", `
			CREATE INDEX IF NOT EXISTS idx_student_attendances_lookup
			ON student_attendances (attendance_id, student_id, status)`},
		{"index student_attendances created", `
			CREATE INDEX IF NOT EXISTS idx_student_attendances_created
			ON student_attendances (created_at)`},
		{"create holidays", `
			CREATE TABLE IF NOT EXISTS holidays (
				id UUID PRIMARY KEY,
				date VARCHAR(10) NOT NULL UNIQUE,
				name TEXT NOT NULL,
				type VARCHAR(10) NOT NULL DEFAULT 'regular',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"create audit_logs", `
			CREATE TABLE IF NOT EXISTS audit_logs (
				id UUID PRIMARY KEY,
				staff_id UUID NOT NULL,
				action TEXT NOT NULL,
				details TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
	}

	for _, step := range steps {
		if _, err := db.Exec(step.query); err != nil {
			log.Printf("Migration step %q failed: %v", step.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
