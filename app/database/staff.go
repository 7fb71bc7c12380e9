package database

import (
	"database/sql"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

func (s *Store) StaffByEmail(email string) (*models.Staff, error) {
	staff := &models.Staff{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM staff WHERE email = $1 AND is_active = true`

	err := s.db.QueryRow(query, email).Scan(
		&staff.ID, &staff.Email, &staff.Password, &staff.FirstName,
		&staff.LastName, &staff.IsActive, &staff.CreatedAt, &staff.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *Store) StaffByID(staffID string) (*models.Staff, error) {
	staff := &models.Staff{Settings: &models.StaffAttendanceSettings{}}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at,
			  school_start_time, grace_period_minutes, pm_late_cutoff_enabled, pm_late_cutoff_time
			  FROM staff WHERE id = $1`

	err := s.db.QueryRow(query, staffID).Scan(
		&staff.ID, &staff.Email, &staff.Password, &staff.FirstName,
		&staff.LastName, &staff.IsActive, &staff.CreatedAt, &staff.UpdatedAt,
		&staff.Settings.SchoolStartTime, &staff.Settings.GracePeriodMinutes,
		&staff.Settings.PMLateCutoffEnabled, &staff.Settings.PMLateCutoffTime,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return staff, nil
}

// StaffIDs lists every active staff member, for the sweep loop.
func (s *Store) StaffIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM staff WHERE is_active = true`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) CreateStaff(staff *models.Staff) error {
	query := `INSERT INTO staff (id, email, password, first_name, last_name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`
	_, err := s.db.Exec(query, staff.ID, staff.Email, staff.Password, staff.FirstName, staff.LastName)
	return err
}

func (s *Store) UpdateStaffPassword(staffID, hashedPassword string) error {
	_, err := s.db.Exec(`UPDATE staff SET password = $1, updated_at = NOW() WHERE id = $2`, hashedPassword, staffID)
	return err
}

func (s *Store) StaffSettings(staffID string) (*models.StaffAttendanceSettings, error) {
	settings := &models.StaffAttendanceSettings{}
	query := `SELECT school_start_time, grace_period_minutes, pm_late_cutoff_enabled, pm_late_cutoff_time
			  FROM staff WHERE id = $1`

	err := s.db.QueryRow(query, staffID).Scan(
		&settings.SchoolStartTime, &settings.GracePeriodMinutes,
		&settings.PMLateCutoffEnabled, &settings.PMLateCutoffTime,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Store) UpdateStaffSettings(staffID string, settings *models.StaffAttendanceSettings) error {
	query := `UPDATE staff
			  SET school_start_time = $1, grace_period_minutes = $2,
			      pm_late_cutoff_enabled = $3, pm_late_cutoff_time = $4, updated_at = NOW()
			  WHERE id = $5`
	_, err := s.db.Exec(query,
		settings.SchoolStartTime, settings.GracePeriodMinutes,
		settings.PMLateCutoffEnabled, settings.PMLateCutoffTime, staffID)
	return err
}
