// Package bot implements the command layer between a chat frontend and the
// Amizone upstream: login/logout lifecycle for stored credentials, a cached
// client per user, and one method per user-facing command. The chat
// transport itself (slash commands, embeds) plugs in from outside via
// Responder.
package bot

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Blonteractor/discord-amibot/internal/amizone"
	"github.com/Blonteractor/discord-amibot/internal/credentials"
	"github.com/Blonteractor/discord-amibot/internal/logging"
	"github.com/Blonteractor/discord-amibot/internal/store"
)

// Bot executes user commands against the store and the shared upstream
// connection. Safe for concurrent use.
type Bot struct {
	store   store.Store
	conn    *amizone.Connection
	cache   *ClientCache
	log     logging.Logger
	timeout time.Duration
}

// New builds a Bot. timeout bounds each command, covering both the store
// round trip and the upstream call; zero disables the deadline.
func New(st store.Store, conn *amizone.Connection, log logging.Logger, timeout time.Duration) *Bot {
	return &Bot{
		store:   st,
		conn:    conn,
		cache:   NewClientCache(st, conn),
		log:     log,
		timeout: timeout,
	}
}

// begin stamps the command with a request id and applies the per-command
// deadline.
func (b *Bot) begin(ctx context.Context, command, identity string) (context.Context, context.CancelFunc, logging.Logger) {
	log := b.log.With("command", command, "user", identity, "request_id", uuid.NewString())
	if b.timeout <= 0 {
		return ctx, func() {}, log
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	return ctx, cancel, log
}

// storeErr classifies a failure from the store layer.
func storeErr(err error) error {
	if errors.Is(err, credentials.ErrDecode) {
		return DecodeError(err)
	}
	return StoreError(err)
}

// Login verifies the supplied credentials against upstream and persists
// them. A credential rejected by upstream is removed again immediately and
// reported as ErrBadCredentials: the record must never outlive a failed
// login attempt.
func (b *Bot) Login(ctx context.Context, identity, username, password string) (*amizone.Profile, error) {
	ctx, cancel, log := b.begin(ctx, "login", identity)
	defer cancel()

	rec, err := b.store.CreateOrGet(ctx, identity, username, password)
	if err != nil {
		if errors.Is(err, credentials.ErrUsernameSeparator) {
			return nil, err
		}
		log.Error(ctx, "store create failed", "err", err)
		return nil, storeErr(err)
	}

	client := amizone.NewClient(rec.Token(), b.conn)

	profile, err := client.GetProfile(ctx)
	if err != nil {
		if amizone.IsUnauthenticated(err) {
			if _, ferr := b.store.Forget(ctx, identity); ferr != nil {
				log.Error(ctx, "cleanup of rejected credential failed", "err", ferr)
			}
			b.cache.Invalidate(identity)
			log.Info(ctx, "login rejected by upstream")
			return nil, ErrBadCredentials
		}
		log.Error(ctx, "login probe failed", "err", err)
		return nil, UpstreamError(err)
	}

	b.cache.Put(identity, client)
	log.Info(ctx, "login ok")
	return profile, nil
}

// UpdateCredentials replaces the stored credential wholesale and drops the
// cached client so the next command picks up the new token. Returns
// ErrNotLoggedIn when there is nothing to update.
func (b *Bot) UpdateCredentials(ctx context.Context, identity, username, password string) error {
	ctx, cancel, log := b.begin(ctx, "update", identity)
	defer cancel()

	prev, err := b.store.Update(ctx, identity, username, password)
	if err != nil {
		if errors.Is(err, credentials.ErrUsernameSeparator) {
			return err
		}
		log.Error(ctx, "store update failed", "err", err)
		return storeErr(err)
	}
	if prev == nil {
		return ErrNotLoggedIn
	}

	b.cache.Invalidate(identity)
	log.Info(ctx, "credentials updated")
	return nil
}

// Logout removes the stored credential and the cached client. Reports
// whether a record existed.
func (b *Bot) Logout(ctx context.Context, identity string) (bool, error) {
	ctx, cancel, log := b.begin(ctx, "logout", identity)
	defer cancel()

	b.cache.Invalidate(identity)

	rec, err := b.store.Forget(ctx, identity)
	if err != nil {
		log.Error(ctx, "store delete failed", "err", err)
		return false, storeErr(err)
	}

	log.Info(ctx, "logout", "existed", rec != nil)
	return rec != nil, nil
}

// client resolves the caller's client via the cache. An absent credential
// is ErrNotLoggedIn.
func (b *Bot) client(ctx context.Context, identity string) (*amizone.Client, error) {
	client, err := b.cache.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, storeErr(err)
	}
	if client == nil {
		return nil, ErrNotLoggedIn
	}
	return client, nil
}

// upstreamErr maps an upstream failure on a long-lived credential. An
// Unauthenticated status evicts the cached client and reports
// ErrNotLoggedIn; the stored record stays so the user can be told to log
// in again rather than silently losing state. Validation failures pass
// through untouched.
func (b *Bot) upstreamErr(ctx context.Context, log logging.Logger, identity string, err error) error {
	if errors.Is(err, amizone.ErrInvalidArgument) {
		return err
	}
	if amizone.IsUnauthenticated(err) {
		b.cache.Invalidate(identity)
		log.Warn(ctx, "stored credential rejected by upstream")
		return ErrNotLoggedIn
	}
	log.Error(ctx, "upstream call failed", "err", err)
	return UpstreamError(err)
}

func (b *Bot) Attendance(ctx context.Context, identity string) ([]amizone.AttendanceRecord, error) {
	ctx, cancel, log := b.begin(ctx, "attendance", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return nil, err
	}
	records, err := client.GetAttendance(ctx)
	if err != nil {
		return nil, b.upstreamErr(ctx, log, identity, err)
	}
	return records, nil
}

func (b *Bot) ExamSchedule(ctx context.Context, identity string) (*amizone.ExamSchedule, error) {
	ctx, cancel, log := b.begin(ctx, "datesheet", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return nil, err
	}
	schedule, err := client.GetExamSchedule(ctx)
	if err != nil {
		return nil, b.upstreamErr(ctx, log, identity, err)
	}
	return schedule, nil
}

func (b *Bot) Profile(ctx context.Context, identity string) (*amizone.Profile, error) {
	ctx, cancel, log := b.begin(ctx, "profile", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return nil, err
	}
	profile, err := client.GetProfile(ctx)
	if err != nil {
		return nil, b.upstreamErr(ctx, log, identity, err)
	}
	return profile, nil
}

func (b *Bot) Semesters(ctx context.Context, identity string) ([]amizone.Semester, error) {
	ctx, cancel, log := b.begin(ctx, "semesters", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return nil, err
	}
	semesters, err := client.GetSemesters(ctx)
	if err != nil {
		return nil, b.upstreamErr(ctx, log, identity, err)
	}
	return semesters, nil
}

func (b *Bot) CurrentCourses(ctx context.Context, identity string) ([]amizone.Course, error) {
	ctx, cancel, log := b.begin(ctx, "courses", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return nil, err
	}
	courses, err := client.GetCurrentCourses(ctx)
	if err != nil {
		return nil, b.upstreamErr(ctx, log, identity, err)
	}
	return courses, nil
}

func (b *Bot) Courses(ctx context.Context, identity, semesterRef string) ([]amizone.Course, error) {
	ctx, cancel, log := b.begin(ctx, "courses", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return nil, err
	}
	courses, err := client.GetCourses(ctx, semesterRef)
	if err != nil {
		return nil, b.upstreamErr(ctx, log, identity, err)
	}
	return courses, nil
}

func (b *Bot) ClassSchedule(ctx context.Context, identity string, date amizone.Date) ([]amizone.ScheduledClass, error) {
	ctx, cancel, log := b.begin(ctx, "schedule", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return nil, err
	}
	classes, err := client.GetClassSchedule(ctx, date)
	if err != nil {
		return nil, b.upstreamErr(ctx, log, identity, err)
	}
	return classes, nil
}

func (b *Bot) WifiMacInfo(ctx context.Context, identity string) (*amizone.WifiMacInfo, error) {
	ctx, cancel, log := b.begin(ctx, "wifi-info", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return nil, err
	}
	info, err := client.GetWifiMacInfo(ctx)
	if err != nil {
		return nil, b.upstreamErr(ctx, log, identity, err)
	}
	return info, nil
}

func (b *Bot) RegisterWifiMac(ctx context.Context, identity, addr string, overrideLimit bool) error {
	ctx, cancel, log := b.begin(ctx, "wifi-register", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return err
	}
	if err := client.RegisterWifiMac(ctx, addr, overrideLimit); err != nil {
		return b.upstreamErr(ctx, log, identity, err)
	}
	return nil
}

func (b *Bot) DeregisterWifiMac(ctx context.Context, identity, addr string) error {
	ctx, cancel, log := b.begin(ctx, "wifi-deregister", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return err
	}
	if err := client.DeregisterWifiMac(ctx, addr); err != nil {
		return b.upstreamErr(ctx, log, identity, err)
	}
	return nil
}

func (b *Bot) FillFacultyFeedback(ctx context.Context, identity string, rating, queryRating int32, comment string) error {
	ctx, cancel, log := b.begin(ctx, "feedback", identity)
	defer cancel()

	client, err := b.client(ctx, identity)
	if err != nil {
		return err
	}
	if err := client.FillFacultyFeedback(ctx, rating, queryRating, comment); err != nil {
		return b.upstreamErr(ctx, log, identity, err)
	}
	return nil
}
