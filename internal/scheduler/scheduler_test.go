package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsBadInput(t *testing.T) {
	s := New()

	require.NoError(t, s.Register("nightly", "0 2 * * *", func(ctx context.Context) error { return nil }))
	assert.Error(t, s.Register("nightly", "0 3 * * *", func(ctx context.Context) error { return nil }))
	assert.Error(t, s.Register("broken", "every day", func(ctx context.Context) error { return nil }))
}

func TestRunNow(t *testing.T) {
	s := New()
	var calls int32
	require.NoError(t, s.Register("count", "", func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}))
	require.NoError(t, s.Register("fail", "", func(ctx context.Context) error {
		return errors.New("disk full")
	}))

	require.NoError(t, s.RunNow(context.Background(), "count"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	err := s.RunNow(context.Background(), "fail")
	assert.EqualError(t, err, "disk full")

	assert.ErrorIs(t, s.RunNow(context.Background(), "missing"), apperrors.ErrTaskNotFound)

	jobs := s.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "count", jobs[0].Name)
	assert.NotNil(t, jobs[0].LastRun)
	assert.Equal(t, "disk full", jobs[1].LastError)
}

func TestRunNowRecoversPanics(t *testing.T) {
	s := New()
	require.NoError(t, s.Register("explode", "", func(ctx context.Context) error { panic("boom") }))

	err := s.RunNow(context.Background(), "explode")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.False(t, s.Jobs()[0].Running)
}

func TestJobsDoNotOverlap(t *testing.T) {
	s := New()
	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, s.Register("slow", "", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}))

	done := make(chan error, 1)
	go func() { done <- s.RunNow(context.Background(), "slow") }()
	<-started

	assert.ErrorIs(t, s.RunNow(context.Background(), "slow"), apperrors.ErrTaskAlreadyRunning)

	close(release)
	assert.NoError(t, <-done)
}

func TestStopWaitsForRunningJobs(t *testing.T) {
	s := New()
	started := make(chan struct{})
	var finished int32
	require.NoError(t, s.Register("slow", "", func(ctx context.Context) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		atomic.StoreInt32(&finished, 1)
		return nil
	}))
	s.Start()

	go func() { _ = s.RunNow(context.Background(), "slow") }()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.Equal(t, int32(1), atomic.LoadInt32(&finished))

	assert.ErrorIs(t, s.RunNow(context.Background(), "slow"), ErrStopped)
}

type fakeCertificates struct {
	archivedAfter int
}

func (f *fakeCertificates) CheckExpiry(ctx context.Context) (*service.ExpiryCheckResult, error) {
	return &service.ExpiryCheckResult{StatusesUpdated: 2, RemindersSent: 1}, nil
}

func (f *fakeCertificates) ArchiveOld(ctx context.Context, days int) (int64, error) {
	f.archivedAfter = days
	return 3, nil
}

type fakeCompliance struct{ err error }

func (f *fakeCompliance) RefreshStatuses(ctx context.Context) (int, error) { return 1, f.err }

type fakeAudits struct{ called bool }

func (f *fakeAudits) ExpireOverdueAudits(ctx context.Context) (int, error) {
	f.called = true
	return 0, nil
}

type fakeReports struct{ recipients []string }

func (f *fakeReports) SendComplianceDigest(ctx context.Context, recipients []string) error {
	f.recipients = recipients
	return nil
}

func TestRegisterMaintenance(t *testing.T) {
	certs := &fakeCertificates{}
	compliance := &fakeCompliance{}
	audits := &fakeAudits{}
	reports := &fakeReports{}

	s := New()
	err := RegisterMaintenance(s, Schedules{
		Daily:            "0 2 * * *",
		Weekly:           "0 6 * * 1",
		Monthly:          "0 3 1 * *",
		ArchiveAfterDays: 365,
		ReportRecipients: []string{"compliance@sysmayal.com"},
	}, Maintenance{Certificates: certs, Compliance: compliance, Organizations: audits, Reports: reports})
	require.NoError(t, err)

	names := make([]string, 0)
	for _, j := range s.Jobs() {
		names = append(names, j.Name)
		assert.NotEmpty(t, j.Schedule)
	}
	assert.Equal(t, []string{
		TaskArchiveOldDocuments,
		TaskCheckCertificationExpiry,
		TaskGenerateComplianceReport,
		TaskUpdateComplianceStatus,
	}, names)

	ctx := context.Background()
	require.NoError(t, s.RunNow(ctx, TaskCheckCertificationExpiry))
	require.NoError(t, s.RunNow(ctx, TaskUpdateComplianceStatus))
	assert.True(t, audits.called)
	require.NoError(t, s.RunNow(ctx, TaskGenerateComplianceReport))
	assert.Equal(t, []string{"compliance@sysmayal.com"}, reports.recipients)
	require.NoError(t, s.RunNow(ctx, TaskArchiveOldDocuments))
	assert.Equal(t, 365, certs.archivedAfter)
}

func TestUpdateComplianceStatusStopsOnError(t *testing.T) {
	audits := &fakeAudits{}
	s := New()
	require.NoError(t, RegisterMaintenance(s, Schedules{}, Maintenance{
		Certificates:  &fakeCertificates{},
		Compliance:    &fakeCompliance{err: errors.New("db down")},
		Organizations: audits,
		Reports:       &fakeReports{},
	}))

	err := s.RunNow(context.Background(), TaskUpdateComplianceStatus)

	assert.ErrorContains(t, err, "db down")
	assert.False(t, audits.called)
}
