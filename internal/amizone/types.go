// Package amizone wraps the upstream Amizone gRPC service behind a typed
// client that stamps each request with the caller's credential token and
// serializes access to the single shared channel.
package amizone

import (
	"fmt"
	"time"
)

// Date is a calendar date without a timezone, matching the upstream
// google.type.Date field on schedule requests.
type Date struct {
	Year  int32
	Month int32
	Day   int32
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: int32(t.Year()), Month: int32(t.Month()), Day: int32(t.Day())}
}

// Validate rejects dates that do not survive a time.Date round trip
// (e.g. month 13 or February 30th).
func (d Date) Validate() error {
	t := time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
	if t.Year() != int(d.Year) || t.Month() != time.Month(d.Month) || t.Day() != int(d.Day) {
		return fmt.Errorf("%w: no such date %04d-%02d-%02d", ErrInvalidArgument, d.Year, d.Month, d.Day)
	}
	return nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AttendanceState mirrors the upstream attendance enumeration.
type AttendanceState int32

const (
	AttendancePending AttendanceState = iota
	AttendancePresent
	AttendanceAbsent
	AttendanceNA
	AttendanceInvalid
)

// AttendanceStateFromInt maps the upstream wire value, folding unknown
// values into AttendanceInvalid.
func AttendanceStateFromInt(v int32) AttendanceState {
	switch v {
	case 0:
		return AttendancePending
	case 1:
		return AttendancePresent
	case 2:
		return AttendanceAbsent
	case 3:
		return AttendanceNA
	default:
		return AttendanceInvalid
	}
}

func (s AttendanceState) String() string {
	switch s {
	case AttendancePending:
		return "pending"
	case AttendancePresent:
		return "present"
	case AttendanceAbsent:
		return "absent"
	case AttendanceNA:
		return "n/a"
	default:
		return "invalid"
	}
}

type AttendanceRecord struct {
	CourseCode string
	CourseName string
	Attended   int32
	Held       int32
}

type ScheduledExam struct {
	CourseCode string
	CourseName string
	Time       time.Time
	Mode       string
	Location   string
}

// ExamSchedule is a titled datesheet.
type ExamSchedule struct {
	Title string
	Exams []ScheduledExam
}

type Semester struct {
	Name string
	Ref  string
}

type Course struct {
	Code        string
	Name        string
	Type        string
	Attendance  AttendanceRecord
	SyllabusDoc string
}

type Profile struct {
	Name               string
	EnrollmentNumber   string
	EnrollmentValidity time.Time
	Batch              string
	Program            string
	DateOfBirth        time.Time
	BloodGroup         string
	IDCardNumber       string
	UUID               string
}

// WifiMacInfo lists the MAC addresses registered on the user's account and
// how many of the available slots remain.
type WifiMacInfo struct {
	Addresses []string
	Slots     int32
	FreeSlots int32
}

type ScheduledClass struct {
	CourseCode string
	CourseName string
	StartTime  time.Time
	EndTime    time.Time
	Faculty    string
	Room       string
	Attendance AttendanceState
}
