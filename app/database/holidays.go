package database

import (
	"database/sql"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

func (s *Store) Holidays() ([]*models.Holiday, error) {
	rows, err := s.db.Query(`SELECT id, date, name, type, created_at FROM holidays ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHolidayRows(rows)
}

func (s *Store) HolidaysInRange(start, end string) ([]*models.Holiday, error) {
	query := `SELECT id, date, name, type, created_at FROM holidays
			  WHERE date >= $1 AND date <= $2 ORDER BY date`
	rows, err := s.db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHolidayRows(rows)
}

func (s *Store) HolidayByID(holidayID string) (*models.Holiday, error) {
	holiday := &models.Holiday{}
	query := `SELECT id, date, name, type, created_at FROM holidays WHERE id = $1`
	err := s.db.QueryRow(query, holidayID).Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.Type, &holiday.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return holiday, nil
}

func (s *Store) HolidayByDate(date string) (*models.Holiday, error) {
	holiday := &models.Holiday{}
	query := `SELECT id, date, name, type, created_at FROM holidays WHERE date = $1`
	err := s.db.QueryRow(query, date).Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.Type, &holiday.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return holiday, nil
}

func (s *Store) CreateHoliday(holiday *models.Holiday) error {
	query := `INSERT INTO holidays (id, date, name, type, created_at) VALUES ($1, $2, $3, $4, NOW())`
	_, err := s.db.Exec(query, holiday.ID, holiday.Date, holiday.Name, string(holiday.Type))
	return err
}

func (s *Store) UpdateHoliday(holiday *models.Holiday) error {
	query := `UPDATE holidays SET date = $1, name = $2, type = $3 WHERE id = $4`
	_, err := s.db.Exec(query, holiday.Date, holiday.Name, string(holiday.Type), holiday.ID)
	return err
}

func (s *Store) DeleteHoliday(holidayID string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM holidays WHERE id = $1`, holidayID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanHolidayRows(rows *sql.Rows) ([]*models.Holiday, error) {
	var holidays []*models.Holiday
	for rows.Next() {
		holiday := &models.Holiday{}
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.Type, &holiday.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}
	return holidays, rows.Err()
}
