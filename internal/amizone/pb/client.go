package pb

import (
	"context"

	"google.golang.org/grpc"
)

// AmizoneServiceClient mirrors the AmizoneService definition in
// amizone.proto, one method per RPC.
type AmizoneServiceClient interface {
	GetAttendance(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*AttendanceRecords, error)
	GetExamSchedule(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*ExaminationSchedule, error)
	GetSemesters(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*SemesterList, error)
	GetCurrentCourses(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*Courses, error)
	GetCourses(ctx context.Context, in *SemesterRef, opts ...grpc.CallOption) (*Courses, error)
	GetUserProfile(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*Profile, error)
	GetWifiMacInfo(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*WifiMacInfo, error)
	RegisterWifiMac(ctx context.Context, in *RegisterWifiMacRequest, opts ...grpc.CallOption) (*EmptyMessage, error)
	DeregisterWifiMac(ctx context.Context, in *DeregisterWifiMacRequest, opts ...grpc.CallOption) (*EmptyMessage, error)
	FillFacultyFeedback(ctx context.Context, in *FillFacultyFeedbackRequest, opts ...grpc.CallOption) (*EmptyMessage, error)
	GetClassSchedule(ctx context.Context, in *ClassScheduleRequest, opts ...grpc.CallOption) (*ScheduledClasses, error)
}

type amizoneServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAmizoneServiceClient(cc grpc.ClientConnInterface) AmizoneServiceClient {
	return &amizoneServiceClient{cc: cc}
}

func invoke[Resp message](ctx context.Context, cc grpc.ClientConnInterface, method string, in message, out Resp, opts []grpc.CallOption) (Resp, error) {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		var zero Resp
		return zero, err
	}
	return out, nil
}

const (
	methodGetAttendance       = "/amizone.v1.AmizoneService/GetAttendance"
	methodGetExamSchedule     = "/amizone.v1.AmizoneService/GetExamSchedule"
	methodGetSemesters        = "/amizone.v1.AmizoneService/GetSemesters"
	methodGetCurrentCourses   = "/amizone.v1.AmizoneService/GetCurrentCourses"
	methodGetCourses          = "/amizone.v1.AmizoneService/GetCourses"
	methodGetUserProfile      = "/amizone.v1.AmizoneService/GetUserProfile"
	methodGetWifiMacInfo      = "/amizone.v1.AmizoneService/GetWifiMacInfo"
	methodRegisterWifiMac     = "/amizone.v1.AmizoneService/RegisterWifiMac"
	methodDeregisterWifiMac   = "/amizone.v1.AmizoneService/DeregisterWifiMac"
	methodFillFacultyFeedback = "/amizone.v1.AmizoneService/FillFacultyFeedback"
	methodGetClassSchedule    = "/amizone.v1.AmizoneService/GetClassSchedule"
)

func (c *amizoneServiceClient) GetAttendance(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*AttendanceRecords, error) {
	return invoke(ctx, c.cc, methodGetAttendance, in, &AttendanceRecords{}, opts)
}

func (c *amizoneServiceClient) GetExamSchedule(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*ExaminationSchedule, error) {
	return invoke(ctx, c.cc, methodGetExamSchedule, in, &ExaminationSchedule{}, opts)
}

func (c *amizoneServiceClient) GetSemesters(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*SemesterList, error) {
	return invoke(ctx, c.cc, methodGetSemesters, in, &SemesterList{}, opts)
}

func (c *amizoneServiceClient) GetCurrentCourses(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*Courses, error) {
	return invoke(ctx, c.cc, methodGetCurrentCourses, in, &Courses{}, opts)
}

func (c *amizoneServiceClient) GetCourses(ctx context.Context, in *SemesterRef, opts ...grpc.CallOption) (*Courses, error) {
	return invoke(ctx, c.cc, methodGetCourses, in, &Courses{}, opts)
}

func (c *amizoneServiceClient) GetUserProfile(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*Profile, error) {
	return invoke(ctx, c.cc, methodGetUserProfile, in, &Profile{}, opts)
}

func (c *amizoneServiceClient) GetWifiMacInfo(ctx context.Context, in *EmptyMessage, opts ...grpc.CallOption) (*WifiMacInfo, error) {
	return invoke(ctx, c.cc, methodGetWifiMacInfo, in, &WifiMacInfo{}, opts)
}

func (c *amizoneServiceClient) RegisterWifiMac(ctx context.Context, in *RegisterWifiMacRequest, opts ...grpc.CallOption) (*EmptyMessage, error) {
	return invoke(ctx, c.cc, methodRegisterWifiMac, in, &EmptyMessage{}, opts)
}

func (c *amizoneServiceClient) DeregisterWifiMac(ctx context.Context, in *DeregisterWifiMacRequest, opts ...grpc.CallOption) (*EmptyMessage, error) {
	return invoke(ctx, c.cc, methodDeregisterWifiMac, in, &EmptyMessage{}, opts)
}

func (c *amizoneServiceClient) FillFacultyFeedback(ctx context.Context, in *FillFacultyFeedbackRequest, opts ...grpc.CallOption) (*EmptyMessage, error) {
	return invoke(ctx, c.cc, methodFillFacultyFeedback, in, &EmptyMessage{}, opts)
}

func (c *amizoneServiceClient) GetClassSchedule(ctx context.Context, in *ClassScheduleRequest, opts ...grpc.CallOption) (*ScheduledClasses, error) {
	return invoke(ctx, c.cc, methodGetClassSchedule, in, &ScheduledClasses{}, opts)
}
