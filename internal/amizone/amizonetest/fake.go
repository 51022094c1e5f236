// Package amizonetest provides a fake upstream Service for tests. The fake
// records the authorization metadata of every call, echoes request
// parameters back in its responses so callers can match responses to their
// own requests, and tracks how many calls are in flight simultaneously.
package amizonetest

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/Blonteractor/discord-amibot/internal/amizone"
)

// Fake implements amizone.Service.
type Fake struct {
	// Err, when set, is returned by every method.
	Err error

	// Delay stretches each call to widen the window in which concurrent
	// dispatch bugs would show up.
	Delay time.Duration

	mu     sync.Mutex
	tokens []string

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	calls       atomic.Int32
}

// Unauthenticated is the upstream's answer to a bad credential token.
func Unauthenticated() error {
	return status.Error(codes.Unauthenticated, "invalid credentials")
}

// Unavailable simulates upstream downtime.
func Unavailable() error {
	return status.Error(codes.Unavailable, "amizone is down")
}

// Tokens returns the authorization metadata value of each call, in order.
func (f *Fake) Tokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

// MaxInFlight reports the highest number of simultaneously running calls
// observed. A correctly serialized connection never exceeds 1.
func (f *Fake) MaxInFlight() int32 { return f.maxInFlight.Load() }

// Calls reports the total number of upstream calls served.
func (f *Fake) Calls() int32 { return f.calls.Load() }

// enter is the common prologue: record the token, bump concurrency
// accounting, simulate work, and surface the configured error.
func (f *Fake) enter(ctx context.Context) (func(), error) {
	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		if vals := md.Get(amizone.AuthorizationHeader); len(vals) > 0 {
			f.mu.Lock()
			f.tokens = append(f.tokens, vals[0])
			f.mu.Unlock()
		}
	}

	n := f.inFlight.Add(1)
	for {
		max := f.maxInFlight.Load()
		if n <= max || f.maxInFlight.CompareAndSwap(max, n) {
			break
		}
	}
	f.calls.Add(1)

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			f.inFlight.Add(-1)
			return nil, ctx.Err()
		}
	}

	return func() { f.inFlight.Add(-1) }, f.Err
}

func (f *Fake) GetAttendance(ctx context.Context) ([]amizone.AttendanceRecord, error) {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return nil, err
	}
	defer done()
	return []amizone.AttendanceRecord{{CourseCode: "CSE101", CourseName: "Intro", Attended: 40, Held: 42}}, nil
}

func (f *Fake) GetExamSchedule(ctx context.Context) (*amizone.ExamSchedule, error) {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return nil, err
	}
	defer done()
	return &amizone.ExamSchedule{Title: "End Semester"}, nil
}

func (f *Fake) GetSemesters(ctx context.Context) ([]amizone.Semester, error) {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return nil, err
	}
	defer done()
	return []amizone.Semester{{Name: "Semester 1", Ref: "1"}}, nil
}

func (f *Fake) GetCurrentCourses(ctx context.Context) ([]amizone.Course, error) {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return nil, err
	}
	defer done()
	return []amizone.Course{{Code: "CSE101", Name: "Intro"}}, nil
}

// GetCourses echoes the semester ref as the course code so tests can match
// each response to its own request.
func (f *Fake) GetCourses(ctx context.Context, semesterRef string) ([]amizone.Course, error) {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return nil, err
	}
	defer done()
	return []amizone.Course{{Code: semesterRef}}, nil
}

func (f *Fake) GetProfile(ctx context.Context) (*amizone.Profile, error) {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return nil, err
	}
	defer done()
	return &amizone.Profile{Name: "Sample User", EnrollmentNumber: "A2305219999"}, nil
}

func (f *Fake) GetWifiMacInfo(ctx context.Context) (*amizone.WifiMacInfo, error) {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return nil, err
	}
	defer done()
	return &amizone.WifiMacInfo{Addresses: []string{"aa:bb:cc:dd:ee:ff"}, Slots: 2, FreeSlots: 1}, nil
}

func (f *Fake) RegisterWifiMac(ctx context.Context, addr string, overrideLimit bool) error {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return err
	}
	defer done()
	return nil
}

func (f *Fake) DeregisterWifiMac(ctx context.Context, addr string) error {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return err
	}
	defer done()
	return nil
}

func (f *Fake) FillFacultyFeedback(ctx context.Context, rating, queryRating int32, comment string) error {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return err
	}
	defer done()
	return nil
}

func (f *Fake) GetClassSchedule(ctx context.Context, date amizone.Date) ([]amizone.ScheduledClass, error) {
	done, err := f.enter(ctx)
	if err != nil {
		if done != nil {
			done()
		}
		return nil, err
	}
	defer done()
	return []amizone.ScheduledClass{{CourseCode: date.String()}}, nil
}
