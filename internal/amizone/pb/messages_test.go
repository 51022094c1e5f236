package pb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestCodec_RoundTripNested(t *testing.T) {
	in := &ScheduledClasses{
		Classes: []*ScheduledClass{
			{
				Course:     &CourseRef{Code: "CSE201", Name: "Algorithms"},
				StartTime:  &timestamppb.Timestamp{Seconds: 1756702800},
				EndTime:    &timestamppb.Timestamp{Seconds: 1756706400, Nanos: 500},
				Faculty:    "Dr. Rao",
				Room:       "E-214",
				Attendance: 1,
			},
			{Course: &CourseRef{Code: "MAT102"}},
		},
	}

	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)

	out := &ScheduledClasses{}
	require.NoError(t, Codec{}.Unmarshal(data, out))
	require.Equal(t, in, out)
}

func TestCodec_RoundTripDateRequest(t *testing.T) {
	in := &ClassScheduleRequest{Date: &date.Date{Year: 2026, Month: 9, Day: 1}}

	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)

	out := &ClassScheduleRequest{}
	require.NoError(t, Codec{}.Unmarshal(data, out))
	require.Equal(t, in, out)
}

// Decoding must match standard proto wire format, not just our own encoder.
func TestUnmarshal_HandBuiltWire(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "aa:bb:cc:dd:ee:ff")
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "11:22:33:44:55:66")
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, 2)
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, 0)

	info := &WifiMacInfo{}
	require.NoError(t, info.unmarshal(b))
	require.Equal(t, []string{"aa:bb:cc:dd:ee:ff", "11:22:33:44:55:66"}, info.Addresses)
	require.EqualValues(t, 2, info.Slots)
	require.EqualValues(t, 0, info.FreeSlots)
}

// Fields added server-side must be skipped, not rejected.
func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	var b []byte
	b = appendString(b, 1, "alice")
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)
	b = appendString(b, 2, "A2305220042")

	p := &Profile{}
	require.NoError(t, p.unmarshal(b))
	require.Equal(t, "alice", p.Name)
	require.Equal(t, "A2305220042", p.EnrollmentNumber)
}

func TestUnmarshal_Truncated(t *testing.T) {
	data, err := Codec{}.Marshal(&SemesterRef{SemesterRef: "3"})
	require.NoError(t, err)

	out := &SemesterRef{}
	require.Error(t, out.unmarshal(data[:len(data)-1]))
}

func TestCodec_RejectsForeignTypes(t *testing.T) {
	_, err := Codec{}.Marshal("not a message")
	require.Error(t, err)
	require.Error(t, Codec{}.Unmarshal(nil, 42))
}
