package amizone

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc/metadata"
)

// AuthorizationHeader is the metadata key carrying the credential token on
// every outbound request.
const AuthorizationHeader = "authorization"

// Client performs authenticated calls for one user. It holds a copy of the
// user's credential token and a reference to the shared Connection; its
// lifetime is independent of the store row the token came from.
//
// Every call follows the same protocol: build the request from validated
// arguments, stamp the token into the outgoing metadata, take the shared
// connection for exactly the duration of the remote call, and surface
// upstream errors verbatim. Retry policy belongs to the caller.
type Client struct {
	token string
	conn  *Connection
}

func NewClient(token string, conn *Connection) *Client {
	return &Client{token: token, conn: conn}
}

// Token returns the credential token this client stamps onto requests.
func (c *Client) Token() string { return c.token }

func (c *Client) withAuth(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, AuthorizationHeader, c.token)
}

func (c *Client) GetAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return c.conn.svc.GetAttendance(ctx)
}

func (c *Client) GetExamSchedule(ctx context.Context) (*ExamSchedule, error) {
	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return c.conn.svc.GetExamSchedule(ctx)
}

func (c *Client) GetSemesters(ctx context.Context) ([]Semester, error) {
	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return c.conn.svc.GetSemesters(ctx)
}

func (c *Client) GetCurrentCourses(ctx context.Context) ([]Course, error) {
	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return c.conn.svc.GetCurrentCourses(ctx)
}

func (c *Client) GetCourses(ctx context.Context, semesterRef string) ([]Course, error) {
	if semesterRef == "" {
		return nil, fmt.Errorf("%w: empty semester ref", ErrInvalidArgument)
	}

	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return c.conn.svc.GetCourses(ctx, semesterRef)
}

func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return c.conn.svc.GetProfile(ctx)
}

func (c *Client) GetWifiMacInfo(ctx context.Context) (*WifiMacInfo, error) {
	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return c.conn.svc.GetWifiMacInfo(ctx)
}

func (c *Client) RegisterWifiMac(ctx context.Context, addr string, overrideLimit bool) error {
	if _, err := net.ParseMAC(addr); err != nil {
		return fmt.Errorf("%w: bad MAC address %q", ErrInvalidArgument, addr)
	}

	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return c.conn.svc.RegisterWifiMac(ctx, addr, overrideLimit)
}

func (c *Client) DeregisterWifiMac(ctx context.Context, addr string) error {
	if _, err := net.ParseMAC(addr); err != nil {
		return fmt.Errorf("%w: bad MAC address %q", ErrInvalidArgument, addr)
	}

	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return c.conn.svc.DeregisterWifiMac(ctx, addr)
}

// FillFacultyFeedback submits one rating to every pending feedback form.
// Ratings are bounded by the upstream forms: rating 1-5, queryRating 1-3.
func (c *Client) FillFacultyFeedback(ctx context.Context, rating, queryRating int32, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating %d outside 1-5", ErrInvalidArgument, rating)
	}
	if queryRating < 1 || queryRating > 3 {
		return fmt.Errorf("%w: query rating %d outside 1-3", ErrInvalidArgument, queryRating)
	}

	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return c.conn.svc.FillFacultyFeedback(ctx, rating, queryRating, comment)
}

func (c *Client) GetClassSchedule(ctx context.Context, date Date) ([]ScheduledClass, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	ctx = c.withAuth(ctx)
	release, err := c.conn.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return c.conn.svc.GetClassSchedule(ctx, date)
}
