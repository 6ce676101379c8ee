package repository

import (
	"errors"
	"time"

	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Upsert(employeeID uuid.UUID, date time.Time, status model.AttendanceStatus) (*model.Attendance, bool, error)
	CountPresent(employeeID uuid.UUID, year int, month time.Month) (int64, error)
	ListByEmployeeMonth(employeeID uuid.UUID, year int, month time.Month) ([]model.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db}
}

// Upsert writes the day's status, returning whether anything changed
func (r *attendanceRepo) Upsert(employeeID uuid.UUID, date time.Time, status model.AttendanceStatus) (*model.Attendance, bool, error) {
	var attendance model.Attendance
	err := r.db.Where("employee_id = ? AND date = ?", employeeID, date).First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		attendance = model.Attendance{EmployeeID: employeeID, Date: date, Status: status}
		if err := r.db.Create(&attendance).Error; err != nil {
			return nil, false, err
		}
		return &attendance, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	if attendance.Status == status {
		return &attendance, false, nil
	}
	attendance.Status = status
	if err := r.db.Save(&attendance).Error; err != nil {
		return nil, false, err
	}
	return &attendance, true, nil
}

func (r *attendanceRepo) CountPresent(employeeID uuid.UUID, year int, month time.Month) (int64, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	var count int64
	err := r.db.Model(&model.Attendance{}).
		Where("employee_id = ? AND status = ? AND date BETWEEN ? AND ?", employeeID, model.AttendancePresent, start, end).
		Count(&count).Error
	return count, err
}

func (r *attendanceRepo) ListByEmployeeMonth(employeeID uuid.UUID, year int, month time.Month) ([]model.Attendance, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	var attendances []model.Attendance
	err := r.db.Where("employee_id = ? AND date BETWEEN ? AND ?", employeeID, start, end).
		Order("date ASC").
		Find(&attendances).Error
	return attendances, err
}
