package amizone

import "context"

// Service is the typed surface of the upstream Amizone API. The production
// implementation adapts the gRPC client bindings (see grpcservice.go); tests
// substitute a fake. Implementations read the caller's credential token from
// the outgoing-context metadata stamped by Client.
type Service interface {
	GetAttendance(ctx context.Context) ([]AttendanceRecord, error)
	GetExamSchedule(ctx context.Context) (*ExamSchedule, error)
	GetSemesters(ctx context.Context) ([]Semester, error)
	GetCurrentCourses(ctx context.Context) ([]Course, error)
	GetCourses(ctx context.Context, semesterRef string) ([]Course, error)
	GetProfile(ctx context.Context) (*Profile, error)
	GetWifiMacInfo(ctx context.Context) (*WifiMacInfo, error)
	RegisterWifiMac(ctx context.Context, addr string, overrideLimit bool) error
	DeregisterWifiMac(ctx context.Context, addr string) error
	FillFacultyFeedback(ctx context.Context, rating, queryRating int32, comment string) error
	GetClassSchedule(ctx context.Context, date Date) ([]ScheduledClass, error)
}
