package database

import (
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

func (s *Store) InsertAuditLog(entry *models.AuditLog) error {
	query := `INSERT INTO audit_logs (id, staff_id, action, details, created_at) VALUES ($1, $2, $3, $4, NOW())`
	_, err := s.db.Exec(query, entry.ID, entry.StaffID, entry.Action, entry.Details)
	return err
}

func (s *Store) AuditLogs(staffID string, page, perPage int) ([]*models.AuditLog, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM audit_logs WHERE ($1 = '' OR staff_id = $1)`, staffID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, staff_id, action, details, created_at FROM audit_logs
			  WHERE ($1 = '' OR staff_id = $1)
			  ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := s.db.Query(query, staffID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []*models.AuditLog
	for rows.Next() {
		entry := &models.AuditLog{}
		if err := rows.Scan(&entry.ID, &entry.StaffID, &entry.Action, &entry.Details, &entry.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	return entries, total, rows.Err()
}
