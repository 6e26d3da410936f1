package scheduler

import (
	"context"
	"fmt"

	"sysmayal-backend/internal/logger"
	"sysmayal-backend/internal/service"
)

// Maintenance job names
const (
	TaskCheckCertificationExpiry = "check_certification_expiry"
	TaskUpdateComplianceStatus   = "update_compliance_status"
	TaskGenerateComplianceReport = "generate_compliance_reports"
	TaskArchiveOldDocuments      = "archive_old_documents"
)

// CertificateMaintainer refreshes certificate statuses and archives old documents
type CertificateMaintainer interface {
	CheckExpiry(ctx context.Context) (*service.ExpiryCheckResult, error)
	ArchiveOld(ctx context.Context, days int) (int64, error)
}

// ComplianceRefresher moves product compliance records past their expiry to Expired
type ComplianceRefresher interface {
	RefreshStatuses(ctx context.Context) (int, error)
}

// AuditExpirer expires organizations with an overdue audit
type AuditExpirer interface {
	ExpireOverdueAudits(ctx context.Context) (int, error)
}

// ComplianceReporter mails the compliance summary
type ComplianceReporter interface {
	SendComplianceDigest(ctx context.Context, recipients []string) error
}

// Schedules holds the cron expressions of the maintenance jobs
type Schedules struct {
	Daily            string
	Weekly           string
	Monthly          string
	ArchiveAfterDays int
	ReportRecipients []string
}

// Maintenance bundles the services the maintenance jobs act on
type Maintenance struct {
	Certificates  CertificateMaintainer
	Compliance    ComplianceRefresher
	Organizations AuditExpirer
	Reports       ComplianceReporter
}

// RegisterMaintenance registers the daily, weekly and monthly maintenance jobs
func RegisterMaintenance(s *Scheduler, schedules Schedules, m Maintenance) error {
	jobs := []struct {
		name     string
		schedule string
		run      JobFunc
	}{
		{TaskCheckCertificationExpiry, schedules.Daily, func(ctx context.Context) error {
			res, err := m.Certificates.CheckExpiry(ctx)
			if err != nil {
				return err
			}
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"statuses_updated": res.StatusesUpdated,
				"reminders_sent":   res.RemindersSent,
			}).Info("Certificate expiry checked")
			return nil
		}},
		{TaskUpdateComplianceStatus, schedules.Daily, func(ctx context.Context) error {
			products, err := m.Compliance.RefreshStatuses(ctx)
			if err != nil {
				return fmt.Errorf("failed to refresh compliance statuses: %w", err)
			}
			audits, err := m.Organizations.ExpireOverdueAudits(ctx)
			if err != nil {
				return fmt.Errorf("failed to expire overdue audits: %w", err)
			}
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"products_expired":      products,
				"organizations_expired": audits,
			}).Info("Compliance statuses updated")
			return nil
		}},
		{TaskGenerateComplianceReport, schedules.Weekly, func(ctx context.Context) error {
			if len(schedules.ReportRecipients) == 0 {
				logger.WithContext(ctx).Warn("No report recipients configured, skipping compliance report")
				return nil
			}
			return m.Reports.SendComplianceDigest(ctx, schedules.ReportRecipients)
		}},
		{TaskArchiveOldDocuments, schedules.Monthly, func(ctx context.Context) error {
			archived, err := m.Certificates.ArchiveOld(ctx, schedules.ArchiveAfterDays)
			if err != nil {
				return err
			}
			logger.WithContext(ctx).WithField("archived", archived).Info("Old documents archived")
			return nil
		}},
	}

	for _, j := range jobs {
		if err := s.Register(j.name, j.schedule, j.run); err != nil {
			return err
		}
	}
	return nil
}
