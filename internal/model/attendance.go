package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// Attendance is one employee's status for one day, upserted by the manager
type Attendance struct {
	BaseModel
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_emp_date" json:"employee_id"`
	Employee   *Employee        `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Date       time.Time        `gorm:"type:date;not null;uniqueIndex:idx_attendance_emp_date" json:"date"`
	Status     AttendanceStatus `gorm:"type:varchar(20);not null" json:"status"`
}

func (Attendance) TableName() string {
	return "attendances"
}
