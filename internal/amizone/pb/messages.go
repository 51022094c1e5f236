package pb

import (
	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func appendTimestamp(b []byte, num protowire.Number, ts *timestamppb.Timestamp) []byte {
	if ts == nil {
		return b
	}
	var inner []byte
	inner = appendInt64(inner, 1, ts.GetSeconds())
	inner = appendInt32(inner, 2, ts.GetNanos())
	return appendMessage(b, num, inner)
}

func consumeTimestamp(b []byte) (*timestamppb.Timestamp, int, error) {
	inner, n, err := consumeBytes(b)
	if err != nil {
		return nil, 0, err
	}
	ts := &timestamppb.Timestamp{}
	err = eachField(inner, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeVarint(b)
			ts.Seconds = int64(v)
			return n, err
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeInt32(b)
			ts.Nanos = v
			return n, err
		}
		return 0, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return ts, n, nil
}

func appendDate(b []byte, num protowire.Number, d *date.Date) []byte {
	if d == nil {
		return b
	}
	var inner []byte
	inner = appendInt32(inner, 1, d.GetYear())
	inner = appendInt32(inner, 2, d.GetMonth())
	inner = appendInt32(inner, 3, d.GetDay())
	return appendMessage(b, num, inner)
}

type EmptyMessage struct{}

func (m *EmptyMessage) marshal(b []byte) []byte { return b }
func (m *EmptyMessage) unmarshal(b []byte) error {
	return eachField(b, func(protowire.Number, protowire.Type, []byte) (int, error) {
		return 0, nil
	})
}

type CourseRef struct {
	Code string
	Name string
}

func (m *CourseRef) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Code)
	b = appendString(b, 2, m.Name)
	return b
}

func (m *CourseRef) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Code = v
			return n, err
		case num == 2 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Name = v
			return n, err
		}
		return 0, nil
	})
}

type Attendance struct {
	Attended int32
	Held     int32
}

func (m *Attendance) marshal(b []byte) []byte {
	b = appendInt32(b, 1, m.Attended)
	b = appendInt32(b, 2, m.Held)
	return b
}

func (m *Attendance) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeInt32(b)
			m.Attended = v
			return n, err
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeInt32(b)
			m.Held = v
			return n, err
		}
		return 0, nil
	})
}

type AttendanceRecord struct {
	Course     *CourseRef
	Attendance *Attendance
}

func (m *AttendanceRecord) marshal(b []byte) []byte {
	if m.Course != nil {
		b = appendMessage(b, 1, m.Course.marshal(nil))
	}
	if m.Attendance != nil {
		b = appendMessage(b, 2, m.Attendance.marshal(nil))
	}
	return b
}

func (m *AttendanceRecord) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Course = &CourseRef{}
			return consumeSub(b, m.Course)
		case num == 2 && typ == protowire.BytesType:
			m.Attendance = &Attendance{}
			return consumeSub(b, m.Attendance)
		}
		return 0, nil
	})
}

type AttendanceRecords struct {
	Records []*AttendanceRecord
}

func (m *AttendanceRecords) marshal(b []byte) []byte {
	for _, r := range m.Records {
		b = appendMessage(b, 1, r.marshal(nil))
	}
	return b
}

func (m *AttendanceRecords) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			r := &AttendanceRecord{}
			n, err := consumeSub(b, r)
			if err == nil {
				m.Records = append(m.Records, r)
			}
			return n, err
		}
		return 0, nil
	})
}

type ScheduledExam struct {
	Course   *CourseRef
	Time     *timestamppb.Timestamp
	Mode     string
	Location string
}

func (m *ScheduledExam) marshal(b []byte) []byte {
	if m.Course != nil {
		b = appendMessage(b, 1, m.Course.marshal(nil))
	}
	b = appendTimestamp(b, 2, m.Time)
	b = appendString(b, 3, m.Mode)
	b = appendString(b, 4, m.Location)
	return b
}

func (m *ScheduledExam) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Course = &CourseRef{}
			return consumeSub(b, m.Course)
		case num == 2 && typ == protowire.BytesType:
			ts, n, err := consumeTimestamp(b)
			m.Time = ts
			return n, err
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Mode = v
			return n, err
		case num == 4 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Location = v
			return n, err
		}
		return 0, nil
	})
}

type ExaminationSchedule struct {
	Title string
	Exams []*ScheduledExam
}

func (m *ExaminationSchedule) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Title)
	for _, e := range m.Exams {
		b = appendMessage(b, 2, e.marshal(nil))
	}
	return b
}

func (m *ExaminationSchedule) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Title = v
			return n, err
		case num == 2 && typ == protowire.BytesType:
			e := &ScheduledExam{}
			n, err := consumeSub(b, e)
			if err == nil {
				m.Exams = append(m.Exams, e)
			}
			return n, err
		}
		return 0, nil
	})
}

type Semester struct {
	Name string
	Ref  string
}

func (m *Semester) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Ref)
	return b
}

func (m *Semester) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Name = v
			return n, err
		case num == 2 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Ref = v
			return n, err
		}
		return 0, nil
	})
}

type SemesterList struct {
	Semesters []*Semester
}

func (m *SemesterList) marshal(b []byte) []byte {
	for _, s := range m.Semesters {
		b = appendMessage(b, 1, s.marshal(nil))
	}
	return b
}

func (m *SemesterList) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			s := &Semester{}
			n, err := consumeSub(b, s)
			if err == nil {
				m.Semesters = append(m.Semesters, s)
			}
			return n, err
		}
		return 0, nil
	})
}

type Course struct {
	Ref         *CourseRef
	Type        string
	Attendance  *Attendance
	SyllabusDoc string
}

func (m *Course) marshal(b []byte) []byte {
	if m.Ref != nil {
		b = appendMessage(b, 1, m.Ref.marshal(nil))
	}
	b = appendString(b, 2, m.Type)
	if m.Attendance != nil {
		b = appendMessage(b, 3, m.Attendance.marshal(nil))
	}
	b = appendString(b, 4, m.SyllabusDoc)
	return b
}

func (m *Course) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Ref = &CourseRef{}
			return consumeSub(b, m.Ref)
		case num == 2 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Type = v
			return n, err
		case num == 3 && typ == protowire.BytesType:
			m.Attendance = &Attendance{}
			return consumeSub(b, m.Attendance)
		case num == 4 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.SyllabusDoc = v
			return n, err
		}
		return 0, nil
	})
}

type Courses struct {
	Courses []*Course
}

func (m *Courses) marshal(b []byte) []byte {
	for _, c := range m.Courses {
		b = appendMessage(b, 1, c.marshal(nil))
	}
	return b
}

func (m *Courses) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			c := &Course{}
			n, err := consumeSub(b, c)
			if err == nil {
				m.Courses = append(m.Courses, c)
			}
			return n, err
		}
		return 0, nil
	})
}

type Profile struct {
	Name               string
	EnrollmentNumber   string
	EnrollmentValidity *timestamppb.Timestamp
	Batch              string
	Program            string
	DateOfBirth        *timestamppb.Timestamp
	BloodGroup         string
	IdCardNumber       string
	Uuid               string
}

func (m *Profile) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.EnrollmentNumber)
	b = appendTimestamp(b, 3, m.EnrollmentValidity)
	b = appendString(b, 4, m.Batch)
	b = appendString(b, 5, m.Program)
	b = appendTimestamp(b, 6, m.DateOfBirth)
	b = appendString(b, 7, m.BloodGroup)
	b = appendString(b, 8, m.IdCardNumber)
	b = appendString(b, 9, m.Uuid)
	return b
}

func (m *Profile) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			v, n, err := consumeString(b)
			m.Name = v
			return n, err
		case 2:
			v, n, err := consumeString(b)
			m.EnrollmentNumber = v
			return n, err
		case 3:
			ts, n, err := consumeTimestamp(b)
			m.EnrollmentValidity = ts
			return n, err
		case 4:
			v, n, err := consumeString(b)
			m.Batch = v
			return n, err
		case 5:
			v, n, err := consumeString(b)
			m.Program = v
			return n, err
		case 6:
			ts, n, err := consumeTimestamp(b)
			m.DateOfBirth = ts
			return n, err
		case 7:
			v, n, err := consumeString(b)
			m.BloodGroup = v
			return n, err
		case 8:
			v, n, err := consumeString(b)
			m.IdCardNumber = v
			return n, err
		case 9:
			v, n, err := consumeString(b)
			m.Uuid = v
			return n, err
		}
		return 0, nil
	})
}

type WifiMacInfo struct {
	Addresses []string
	Slots     int32
	FreeSlots int32
}

func (m *WifiMacInfo) marshal(b []byte) []byte {
	for _, a := range m.Addresses {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, a)
	}
	b = appendInt32(b, 2, m.Slots)
	b = appendInt32(b, 3, m.FreeSlots)
	return b
}

func (m *WifiMacInfo) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			if err == nil {
				m.Addresses = append(m.Addresses, v)
			}
			return n, err
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeInt32(b)
			m.Slots = v
			return n, err
		case num == 3 && typ == protowire.VarintType:
			v, n, err := consumeInt32(b)
			m.FreeSlots = v
			return n, err
		}
		return 0, nil
	})
}

type ScheduledClass struct {
	Course     *CourseRef
	StartTime  *timestamppb.Timestamp
	EndTime    *timestamppb.Timestamp
	Faculty    string
	Room       string
	Attendance int32
}

func (m *ScheduledClass) marshal(b []byte) []byte {
	if m.Course != nil {
		b = appendMessage(b, 1, m.Course.marshal(nil))
	}
	b = appendTimestamp(b, 2, m.StartTime)
	b = appendTimestamp(b, 3, m.EndTime)
	b = appendString(b, 4, m.Faculty)
	b = appendString(b, 5, m.Room)
	b = appendInt32(b, 6, m.Attendance)
	return b
}

func (m *ScheduledClass) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Course = &CourseRef{}
			return consumeSub(b, m.Course)
		case num == 2 && typ == protowire.BytesType:
			ts, n, err := consumeTimestamp(b)
			m.StartTime = ts
			return n, err
		case num == 3 && typ == protowire.BytesType:
			ts, n, err := consumeTimestamp(b)
			m.EndTime = ts
			return n, err
		case num == 4 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Faculty = v
			return n, err
		case num == 5 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Room = v
			return n, err
		case num == 6 && typ == protowire.VarintType:
			v, n, err := consumeInt32(b)
			m.Attendance = v
			return n, err
		}
		return 0, nil
	})
}

type ScheduledClasses struct {
	Classes []*ScheduledClass
}

func (m *ScheduledClasses) marshal(b []byte) []byte {
	for _, c := range m.Classes {
		b = appendMessage(b, 1, c.marshal(nil))
	}
	return b
}

func (m *ScheduledClasses) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			c := &ScheduledClass{}
			n, err := consumeSub(b, c)
			if err == nil {
				m.Classes = append(m.Classes, c)
			}
			return n, err
		}
		return 0, nil
	})
}

type SemesterRef struct {
	SemesterRef string
}

func (m *SemesterRef) marshal(b []byte) []byte {
	return appendString(b, 1, m.SemesterRef)
}

func (m *SemesterRef) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n, err := consumeString(b)
			m.SemesterRef = v
			return n, err
		}
		return 0, nil
	})
}

type RegisterWifiMacRequest struct {
	Address       string
	OverrideLimit bool
}

func (m *RegisterWifiMacRequest) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Address)
	b = appendBool(b, 2, m.OverrideLimit)
	return b
}

func (m *RegisterWifiMacRequest) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Address = v
			return n, err
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(b)
			m.OverrideLimit = v != 0
			return n, err
		}
		return 0, nil
	})
}

type DeregisterWifiMacRequest struct {
	Address string
}

func (m *DeregisterWifiMacRequest) marshal(b []byte) []byte {
	return appendString(b, 1, m.Address)
}

func (m *DeregisterWifiMacRequest) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n, err := consumeString(b)
			m.Address = v
			return n, err
		}
		return 0, nil
	})
}

type FillFacultyFeedbackRequest struct {
	Rating      int32
	QueryRating int32
	Comment     string
}

func (m *FillFacultyFeedbackRequest) marshal(b []byte) []byte {
	b = appendInt32(b, 1, m.Rating)
	b = appendInt32(b, 2, m.QueryRating)
	b = appendString(b, 3, m.Comment)
	return b
}

func (m *FillFacultyFeedbackRequest) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeInt32(b)
			m.Rating = v
			return n, err
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeInt32(b)
			m.QueryRating = v
			return n, err
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			m.Comment = v
			return n, err
		}
		return 0, nil
	})
}

type ClassScheduleRequest struct {
	Date *date.Date
}

func (m *ClassScheduleRequest) marshal(b []byte) []byte {
	return appendDate(b, 1, m.Date)
}

func (m *ClassScheduleRequest) unmarshal(b []byte) error {
	return eachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			inner, n, err := consumeBytes(b)
			if err != nil {
				return 0, err
			}
			d := &date.Date{}
			err = eachField(inner, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
				if typ != protowire.VarintType {
					return 0, nil
				}
				v, n, err := consumeInt32(b)
				switch num {
				case 1:
					d.Year = v
				case 2:
					d.Month = v
				case 3:
					d.Day = v
				}
				return n, err
			})
			if err != nil {
				return 0, err
			}
			m.Date = d
			return n, nil
		}
		return 0, nil
	})
}
