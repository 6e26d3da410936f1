package scheduler

import (
	"sysmayal-backend/internal/config"
	"sysmayal-backend/internal/service"
)

// NewMaintenanceScheduler builds a scheduler with the maintenance jobs registered
// on the configured schedules. The caller starts and stops it.
func NewMaintenanceScheduler(cfg *config.Config, reg *service.Registry) (*Scheduler, error) {
	s := New()
	err := RegisterMaintenance(s, Schedules{
		Daily:            cfg.ScheduleDaily,
		Weekly:           cfg.ScheduleWeekly,
		Monthly:          cfg.ScheduleMonthly,
		ArchiveAfterDays: cfg.ArchiveAfterDays,
		ReportRecipients: cfg.ReportRecipients,
	}, Maintenance{
		Certificates:  reg.Certificates,
		Compliance:    reg.ProductCompliance,
		Organizations: reg.Organizations,
		Reports:       reg.Reports,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
