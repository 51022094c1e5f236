package amizone

import (
	"context"
	"time"

	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Blonteractor/discord-amibot/internal/amizone/pb"
)

// grpcService adapts the AmizoneService client bindings to the Service
// interface, unwrapping responses into domain types. Errors pass through
// untouched so callers can read the gRPC status.
type grpcService struct {
	client pb.AmizoneServiceClient
}

// NewGRPCService builds the production Service over an established channel.
func NewGRPCService(cc *grpc.ClientConn) Service {
	return &grpcService{client: pb.NewAmizoneServiceClient(cc)}
}

func (s *grpcService) GetAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	resp, err := s.client.GetAttendance(ctx, &pb.EmptyMessage{})
	if err != nil {
		return nil, err
	}

	records := make([]AttendanceRecord, 0, len(resp.Records))
	for _, r := range resp.Records {
		records = append(records, attendanceRecordFromPB(r))
	}
	return records, nil
}

func (s *grpcService) GetExamSchedule(ctx context.Context) (*ExamSchedule, error) {
	resp, err := s.client.GetExamSchedule(ctx, &pb.EmptyMessage{})
	if err != nil {
		return nil, err
	}

	schedule := &ExamSchedule{Title: resp.Title, Exams: make([]ScheduledExam, 0, len(resp.Exams))}
	for _, e := range resp.Exams {
		exam := ScheduledExam{
			Mode:     e.Mode,
			Location: e.Location,
			Time:     timeFromPB(e.Time),
		}
		if e.Course != nil {
			exam.CourseCode = e.Course.Code
			exam.CourseName = e.Course.Name
		}
		schedule.Exams = append(schedule.Exams, exam)
	}
	return schedule, nil
}

func (s *grpcService) GetSemesters(ctx context.Context) ([]Semester, error) {
	resp, err := s.client.GetSemesters(ctx, &pb.EmptyMessage{})
	if err != nil {
		return nil, err
	}

	semesters := make([]Semester, 0, len(resp.Semesters))
	for _, sem := range resp.Semesters {
		semesters = append(semesters, Semester{Name: sem.Name, Ref: sem.Ref})
	}
	return semesters, nil
}

func (s *grpcService) GetCurrentCourses(ctx context.Context) ([]Course, error) {
	resp, err := s.client.GetCurrentCourses(ctx, &pb.EmptyMessage{})
	if err != nil {
		return nil, err
	}
	return coursesFromPB(resp), nil
}

func (s *grpcService) GetCourses(ctx context.Context, semesterRef string) ([]Course, error) {
	resp, err := s.client.GetCourses(ctx, &pb.SemesterRef{SemesterRef: semesterRef})
	if err != nil {
		return nil, err
	}
	return coursesFromPB(resp), nil
}

func (s *grpcService) GetProfile(ctx context.Context) (*Profile, error) {
	resp, err := s.client.GetUserProfile(ctx, &pb.EmptyMessage{})
	if err != nil {
		return nil, err
	}

	return &Profile{
		Name:               resp.Name,
		EnrollmentNumber:   resp.EnrollmentNumber,
		EnrollmentValidity: timeFromPB(resp.EnrollmentValidity),
		Batch:              resp.Batch,
		Program:            resp.Program,
		DateOfBirth:        timeFromPB(resp.DateOfBirth),
		BloodGroup:         resp.BloodGroup,
		IDCardNumber:       resp.IdCardNumber,
		UUID:               resp.Uuid,
	}, nil
}

func (s *grpcService) GetWifiMacInfo(ctx context.Context) (*WifiMacInfo, error) {
	resp, err := s.client.GetWifiMacInfo(ctx, &pb.EmptyMessage{})
	if err != nil {
		return nil, err
	}
	return &WifiMacInfo{
		Addresses: resp.Addresses,
		Slots:     resp.Slots,
		FreeSlots: resp.FreeSlots,
	}, nil
}

func (s *grpcService) RegisterWifiMac(ctx context.Context, addr string, overrideLimit bool) error {
	_, err := s.client.RegisterWifiMac(ctx, &pb.RegisterWifiMacRequest{
		Address:       addr,
		OverrideLimit: overrideLimit,
	})
	return err
}

func (s *grpcService) DeregisterWifiMac(ctx context.Context, addr string) error {
	_, err := s.client.DeregisterWifiMac(ctx, &pb.DeregisterWifiMacRequest{Address: addr})
	return err
}

func (s *grpcService) FillFacultyFeedback(ctx context.Context, rating, queryRating int32, comment string) error {
	_, err := s.client.FillFacultyFeedback(ctx, &pb.FillFacultyFeedbackRequest{
		Rating:      rating,
		QueryRating: queryRating,
		Comment:     comment,
	})
	return err
}

func (s *grpcService) GetClassSchedule(ctx context.Context, d Date) ([]ScheduledClass, error) {
	resp, err := s.client.GetClassSchedule(ctx, &pb.ClassScheduleRequest{
		Date: &date.Date{Year: d.Year, Month: d.Month, Day: d.Day},
	})
	if err != nil {
		return nil, err
	}

	classes := make([]ScheduledClass, 0, len(resp.Classes))
	for _, c := range resp.Classes {
		class := ScheduledClass{
			StartTime:  timeFromPB(c.StartTime),
			EndTime:    timeFromPB(c.EndTime),
			Faculty:    c.Faculty,
			Room:       c.Room,
			Attendance: AttendanceStateFromInt(c.Attendance),
		}
		if c.Course != nil {
			class.CourseCode = c.Course.Code
			class.CourseName = c.Course.Name
		}
		classes = append(classes, class)
	}
	return classes, nil
}

func attendanceRecordFromPB(r *pb.AttendanceRecord) AttendanceRecord {
	var rec AttendanceRecord
	if r.Course != nil {
		rec.CourseCode = r.Course.Code
		rec.CourseName = r.Course.Name
	}
	if r.Attendance != nil {
		rec.Attended = r.Attendance.Attended
		rec.Held = r.Attendance.Held
	}
	return rec
}

func coursesFromPB(resp *pb.Courses) []Course {
	courses := make([]Course, 0, len(resp.Courses))
	for _, c := range resp.Courses {
		course := Course{Type: c.Type, SyllabusDoc: c.SyllabusDoc}
		if c.Ref != nil {
			course.Code = c.Ref.Code
			course.Name = c.Ref.Name
		}
		if c.Attendance != nil {
			course.Attendance = AttendanceRecord{
				CourseCode: course.Code,
				CourseName: course.Name,
				Attended:   c.Attendance.Attended,
				Held:       c.Attendance.Held,
			}
		}
		courses = append(courses, course)
	}
	return courses
}

// timeFromPB tolerates absent timestamps.
func timeFromPB(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
