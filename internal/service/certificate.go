package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/logger"
	"sysmayal-backend/internal/notification"
	"sysmayal-backend/internal/repository"
	"sysmayal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	certificateExpiringDays = 30
	forecastMonths          = 12

	// DefaultExpiringWindow is the look-ahead of GetExpiring when no window is given
	DefaultExpiringWindow = 90
)

// reminderDays are the days before expiry on which a reminder mail is sent
var reminderDays = map[int]bool{90: true, 30: true, 7: true, 1: true}

// CertificateService handles business logic for certification documents
type CertificateService struct {
	repo       repository.CertificateRepositoryInterface
	orgRepo    repository.OrganizationRepositoryInterface
	store      storage.ObjectStore
	notifier   notification.NotifierInterface
	dashboards *DashboardCache
	validator  *validator.Validate
}

// NewCertificateService creates a new certificate service. A nil store disables uploads.
func NewCertificateService(
	repo repository.CertificateRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	store storage.ObjectStore,
	notifier notification.NotifierInterface,
	dashboards *DashboardCache,
	validator *validator.Validate,
) *CertificateService {
	return &CertificateService{
		repo:       repo,
		orgRepo:    orgRepo,
		store:      store,
		notifier:   notifier,
		dashboards: dashboards,
		validator:  validator,
	}
}

// CertificateRequest represents the request to create or update a certification document
type CertificateRequest struct {
	DocumentTitle     string     `json:"document_title" validate:"required,max=200" example:"EU Organic Certificate"`
	DocumentType      string     `json:"document_type,omitempty" validate:"max=100" example:"Organic Certification"`
	CertificateNumber string     `json:"certificate_number,omitempty" validate:"max=100"`
	IssuingAuthority  string     `json:"issuing_authority,omitempty" validate:"max=140"`
	Country           string     `json:"country,omitempty" validate:"max=100"`
	OrganizationID    *uuid.UUID `json:"organization_id,omitempty"`
	RelatedProduct    string     `json:"related_product,omitempty" validate:"max=140"`

	IssueDate       *models.Date `json:"issue_date,omitempty" swaggertype:"string"`
	ExpiryDate      *models.Date `json:"expiry_date,omitempty" swaggertype:"string" example:"2027-06-30"`
	LastRenewalDate *models.Date `json:"last_renewal_date,omitempty" swaggertype:"string"`
	NextRenewalDue  *models.Date `json:"next_renewal_due,omitempty" swaggertype:"string"`

	Status          models.CertificateStatus `json:"status,omitempty" validate:"omitempty,oneof=Valid 'Expiring Soon' Expired 'Under Renewal' Suspended"`
	AccessLevel     string                   `json:"access_level,omitempty" validate:"omitempty,oneof=Public Internal Confidential Restricted"`
	PaymentStatus   string                   `json:"payment_status,omitempty" validate:"omitempty,oneof=Paid Pending Overdue"`
	ReviewFrequency string                   `json:"review_frequency,omitempty" validate:"omitempty,oneof=Annual Bi-annual Quarterly Monthly"`

	CertificationCost decimal.Decimal `json:"certification_cost" swaggertype:"number"`
	RenewalCost       decimal.Decimal `json:"renewal_cost" swaggertype:"number"`
	Currency          string          `json:"currency,omitempty" validate:"max=10"`

	PrimaryContact   string `json:"primary_contact,omitempty" validate:"max=140"`
	SecondaryContact string `json:"secondary_contact,omitempty" validate:"max=140"`
	ContactEmail     string `json:"contact_email,omitempty" validate:"omitempty,email,max=140"`
}

func (req *CertificateRequest) apply(doc *models.CertificationDocument) {
	doc.DocumentTitle = req.DocumentTitle
	doc.DocumentType = req.DocumentType
	doc.CertificateNumber = req.CertificateNumber
	doc.IssuingAuthority = req.IssuingAuthority
	doc.Country = req.Country
	doc.OrganizationID = req.OrganizationID
	doc.RelatedProduct = req.RelatedProduct
	doc.IssueDate = req.IssueDate.OrNil()
	doc.ExpiryDate = req.ExpiryDate.OrNil()
	doc.LastRenewalDate = req.LastRenewalDate.OrNil()
	doc.NextRenewalDue = req.NextRenewalDue.OrNil()
	if req.Status != "" {
		doc.Status = req.Status
	}
	doc.AccessLevel = req.AccessLevel
	doc.PaymentStatus = req.PaymentStatus
	doc.ReviewFrequency = req.ReviewFrequency
	doc.CertificationCost = req.CertificationCost
	doc.RenewalCost = req.RenewalCost
	doc.Currency = req.Currency
	doc.PrimaryContact = req.PrimaryContact
	doc.SecondaryContact = req.SecondaryContact
	doc.ContactEmail = req.ContactEmail
}

// CertificateResponse represents the response for certificate operations
type CertificateResponse struct {
	*models.CertificationDocument
	Warnings []string `json:"warnings,omitempty"`
}

// CertificateListResponse represents a paginated list of certificates
type CertificateListResponse = ListResponse[models.CertificationDocument]

// CertificateListFilter holds the list and report query parameters
type CertificateListFilter struct {
	Status          string     `form:"status"`
	DocumentType    string     `form:"document_type"`
	Country         string     `form:"country"`
	OrganizationID  *uuid.UUID `form:"organization_id"`
	IncludeArchived bool       `form:"include_archived"`
}

// DocumentFile is a stored certificate file
type DocumentFile struct {
	Name string
	Data []byte
}

// VerificationResult is the outcome of an integrity check
type VerificationResult struct {
	Document string                    `json:"document"`
	Status   models.VerificationStatus `json:"status"`
	Message  string                    `json:"message"`
}

// TimelineEvent is one dated step in a certificate's life
type TimelineEvent struct {
	Date   models.Date `json:"date" swaggertype:"string"`
	Event  string      `json:"event"`
	Status string      `json:"status"`
}

// CertificateDashboard aggregates certificates for the dashboard
type CertificateDashboard struct {
	StatusDistribution []repository.GroupCount           `json:"status_distribution"`
	TypeDistribution   []repository.GroupCount           `json:"type_distribution"`
	ExpiryForecast     []repository.GroupCount           `json:"expiry_forecast"`
	CostAnalysis       *repository.CertificateCostSummary `json:"cost_analysis"`
}

// ExpiryCheckResult reports what a scheduled expiry pass changed
type ExpiryCheckResult struct {
	StatusesUpdated int `json:"statuses_updated"`
	RemindersSent   int `json:"reminders_sent"`
}

// Create creates a new certification document
func (s *CertificateService) Create(ctx context.Context, req *CertificateRequest) (*CertificateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	doc := &models.CertificationDocument{}
	req.apply(doc)
	if err := s.prepare(doc); err != nil {
		return nil, err
	}
	if days := daysUntil(doc.ExpiryDate, models.Today()); days != nil {
		doc.Status = statusForExpiry(*days)
	}

	user := auth.UserFromContext(ctx)
	doc.CreatedByUser = user
	doc.LastUpdatedBy = user
	doc.Stamp(user)
	if err := s.repo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	s.dashboards.invalidate(ctx, cache.PrefixCertificates)
	s.remind(ctx, doc, models.Today())
	logger.WithContext(ctx).WithField("certificate_id", doc.ID).Info("Certificate created")
	return &CertificateResponse{CertificationDocument: doc}, nil
}

// GetByID retrieves a certificate by ID
func (s *CertificateService) GetByID(ctx context.Context, id uuid.UUID) (*CertificateResponse, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCertificateNotFound, "certificate")
	}
	return &CertificateResponse{CertificationDocument: doc}, nil
}

// GetAll retrieves certificates with filters and pagination
func (s *CertificateService) GetAll(ctx context.Context, filter CertificateListFilter, page, pageSize int) (*CertificateListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	docs, total, err := s.repo.GetAll(repository.CertificateFilter(filter), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get certificates: %w", err)
	}
	return &CertificateListResponse{Items: docs, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces the editable fields of a certificate
func (s *CertificateService) Update(ctx context.Context, id uuid.UUID, req *CertificateRequest) (*CertificateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCertificateNotFound, "certificate")
	}
	req.apply(doc)
	if err := s.prepare(doc); err != nil {
		return nil, err
	}
	today := models.Today()
	refreshCertificateStatus(doc, today)

	if err := s.persist(ctx, doc); err != nil {
		return nil, err
	}
	s.remind(ctx, doc, today)
	return &CertificateResponse{CertificationDocument: doc}, nil
}

// Delete deletes a certificate and its stored file
func (s *CertificateService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return lookupError(err, apperrors.ErrCertificateNotFound, "certificate")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}

	if doc.DocumentFile != "" && s.store != nil {
		if err := s.store.Delete(ctx, doc.DocumentFile); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			logger.WithContext(ctx).WithField("certificate_id", id).Warnf("Failed to delete document file: %v", err)
		}
	}
	s.dashboards.invalidate(ctx, cache.PrefixCertificates)
	return nil
}

// Upload stores the document file and records its hash and size
func (s *CertificateService) Upload(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType string) (*CertificateResponse, error) {
	if s.store == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}
	if strings.TrimSpace(filename) == "" || len(data) == 0 {
		return nil, &apperrors.ValidationError{Field: "file", Message: "A non-empty document file is required"}
	}

	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCertificateNotFound, "certificate")
	}

	key := storage.CertificateKey(doc.ID.String(), filename)
	if err := s.store.Put(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("failed to store document file: %w", err)
	}

	doc.DocumentFile = key
	doc.DocumentHash = md5Hex(data)
	doc.FileSize = fmt.Sprintf("%.1f KB", float64(len(data))/1024)
	doc.VerificationStatus = models.VerificationStatusPending

	if err := s.persist(ctx, doc); err != nil {
		return nil, err
	}
	return &CertificateResponse{CertificationDocument: doc}, nil
}

// Download returns the stored document file
func (s *CertificateService) Download(ctx context.Context, id uuid.UUID) (*DocumentFile, error) {
	if s.store == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCertificateNotFound, "certificate")
	}
	if doc.DocumentFile == "" {
		return nil, apperrors.ErrDocumentFileNotFound
	}

	data, err := s.store.Get(ctx, doc.DocumentFile)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, apperrors.ErrDocumentFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}
	return &DocumentFile{Name: path.Base(doc.DocumentFile), Data: data}, nil
}

// Verify compares the stored file against the recorded hash
func (s *CertificateService) Verify(ctx context.Context, id uuid.UUID) (*VerificationResult, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCertificateNotFound, "certificate")
	}
	return s.verify(ctx, doc)
}

// BulkVerify verifies several certificates; failures are reported per document
func (s *CertificateService) BulkVerify(ctx context.Context, ids []uuid.UUID) ([]VerificationResult, error) {
	if len(ids) == 0 {
		return nil, &apperrors.ValidationError{Field: "ids", Message: "At least one document is required"}
	}

	docs, err := s.repo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get certificates: %w", err)
	}

	results := make([]VerificationResult, 0, len(docs))
	for i := range docs {
		result, err := s.verify(ctx, &docs[i])
		if err != nil {
			results = append(results, VerificationResult{
				Document: docs[i].DocumentTitle,
				Status:   docs[i].VerificationStatus,
				Message:  apperrors.UserMessage(err),
			})
			continue
		}
		results = append(results, *result)
	}
	return results, nil
}

// Renew records a renewal today and schedules the next one from the review frequency
func (s *CertificateService) Renew(ctx context.Context, id uuid.UUID) (*MessageResponse, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCertificateNotFound, "certificate")
	}

	doc.LastRenewalDate = models.DatePtr(models.Today())
	if doc.ExpiryDate != nil {
		doc.NextRenewalDue = models.DatePtr(doc.ExpiryDate.AddDays(-renewalLeadDays(doc.ReviewFrequency)))
	}
	doc.Status = models.CertificateStatusValid

	if err := s.persist(ctx, doc); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Certificate renewed successfully"}, nil
}

// GetTimeline returns the dated events of a certificate in chronological order
func (s *CertificateService) GetTimeline(ctx context.Context, id uuid.UUID) ([]TimelineEvent, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCertificateNotFound, "certificate")
	}
	return certificateTimeline(doc, models.Today()), nil
}

// GetExpiring lists unexpired certificates whose expiry falls within days
func (s *CertificateService) GetExpiring(ctx context.Context, days int) ([]models.CertificationDocument, error) {
	if days <= 0 {
		return nil, apperrors.ErrInvalidExpiryWindow
	}
	docs, err := s.repo.GetExpiring(models.Today().Time, days)
	if err != nil {
		return nil, fmt.Errorf("failed to get expiring certificates: %w", err)
	}
	return docs, nil
}

// GetDashboard returns status and type counts, the 12-month expiry forecast and the cost analysis
func (s *CertificateService) GetDashboard(ctx context.Context) (*CertificateDashboard, error) {
	return loadCached(ctx, s.dashboards, cache.PrefixCertificates+"dashboard", func() (*CertificateDashboard, error) {
		byStatus, err := s.repo.CountByStatus()
		if err != nil {
			return nil, fmt.Errorf("failed to count certificate status: %w", err)
		}
		byType, err := s.repo.CountByType()
		if err != nil {
			return nil, fmt.Errorf("failed to count document types: %w", err)
		}
		forecast, err := s.repo.ExpiryForecast(models.Today().Time, forecastMonths)
		if err != nil {
			return nil, fmt.Errorf("failed to build expiry forecast: %w", err)
		}
		costs, err := s.repo.CostSummary()
		if err != nil {
			return nil, fmt.Errorf("failed to summarise certificate costs: %w", err)
		}

		return &CertificateDashboard{
			StatusDistribution: byStatus,
			TypeDistribution:   byType,
			ExpiryForecast:     forecast,
			CostAnalysis:       costs,
		}, nil
	})
}

// GetReport lists every certificate matching filter ordered by expiry and title
func (s *CertificateService) GetReport(ctx context.Context, filter CertificateListFilter) ([]models.CertificationDocument, error) {
	docs, err := s.repo.Find(repository.CertificateFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to generate certificate report: %w", err)
	}
	return docs, nil
}

// CheckExpiry refreshes the status of every dated certificate and sends the due reminders
func (s *CertificateService) CheckExpiry(ctx context.Context) (*ExpiryCheckResult, error) {
	docs, err := s.repo.GetWithExpiry()
	if err != nil {
		return nil, fmt.Errorf("failed to get certificates: %w", err)
	}

	today := models.Today()
	result := &ExpiryCheckResult{}
	for i := range docs {
		doc := &docs[i]
		log := logger.WithContext(ctx).WithField("certificate_id", doc.ID)

		before := doc.Status
		refreshCertificateStatus(doc, today)
		if doc.Status != before {
			doc.Stamp("system")
			if err := s.repo.Update(doc); err != nil {
				log.Errorf("Failed to update certificate status: %v", err)
			} else {
				result.StatusesUpdated++
			}
		}

		if s.remind(ctx, doc, today) {
			result.RemindersSent++
		}
	}

	if result.StatusesUpdated > 0 {
		s.dashboards.invalidate(ctx, cache.PrefixCertificates)
	}
	return result, nil
}

// ArchiveOld archives expired certificates whose expiry is more than days in the past
func (s *CertificateService) ArchiveOld(ctx context.Context, days int) (int64, error) {
	cutoff := models.Today().AddDays(-days)
	archived, err := s.repo.ArchiveExpiredBefore(cutoff.Time)
	if err != nil {
		return 0, fmt.Errorf("failed to archive certificates: %w", err)
	}
	if archived > 0 {
		s.dashboards.invalidate(ctx, cache.PrefixCertificates)
	}
	return archived, nil
}

// remind mails the certificate contact when expiry is exactly one of the reminder days away
func (s *CertificateService) remind(ctx context.Context, doc *models.CertificationDocument, today models.Date) bool {
	days := daysUntil(doc.ExpiryDate, today)
	if days == nil || *days <= 0 || !reminderDays[*days] || doc.ContactEmail == "" {
		return false
	}
	return notify(ctx, s.notifier, expiryReminderMail(doc, *days))
}

func (s *CertificateService) prepare(doc *models.CertificationDocument) error {
	if doc.IssueDate != nil && doc.ExpiryDate != nil && !doc.IssueDate.Before(*doc.ExpiryDate) {
		return apperrors.ErrIssueAfterExpiry
	}
	if doc.LastRenewalDate != nil && doc.NextRenewalDue != nil && doc.LastRenewalDate.After(*doc.NextRenewalDue) {
		return apperrors.ErrRenewalDatesOutOfOrder
	}
	if doc.OrganizationID != nil {
		if _, err := s.orgRepo.GetByID(*doc.OrganizationID); err != nil {
			return lookupError(err, apperrors.ErrOrganizationNotFound, "organization")
		}
	}

	if doc.Status == "" {
		doc.Status = models.CertificateStatusValid
	}
	doc.AccessLevel = orDefault(doc.AccessLevel, "Internal")
	doc.PaymentStatus = orDefault(doc.PaymentStatus, "Paid")
	doc.ReviewFrequency = orDefault(doc.ReviewFrequency, "Annual")
	if doc.VerificationStatus == "" {
		doc.VerificationStatus = models.VerificationStatusPending
	}
	return nil
}

func (s *CertificateService) persist(ctx context.Context, doc *models.CertificationDocument) error {
	user := auth.UserFromContext(ctx)
	if doc.CreatedByUser == "" {
		doc.CreatedByUser = user
	}
	doc.LastUpdatedBy = user
	doc.Stamp(user)

	if err := s.repo.Update(doc); err != nil {
		return fmt.Errorf("failed to update certificate: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixCertificates)
	return nil
}

func (s *CertificateService) verify(ctx context.Context, doc *models.CertificationDocument) (*VerificationResult, error) {
	if doc.DocumentFile == "" || doc.DocumentHash == "" {
		return nil, apperrors.ErrNoFileForVerification
	}
	if s.store == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}

	data, err := s.store.Get(ctx, doc.DocumentFile)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, apperrors.ErrDocumentFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	result := &VerificationResult{Document: doc.DocumentTitle}
	if md5Hex(data) == doc.DocumentHash {
		result.Status = models.VerificationStatusVerified
		result.Message = "Document integrity verified"
	} else {
		result.Status = models.VerificationStatusFailed
		result.Message = "Document has been modified or corrupted"
	}

	doc.VerificationStatus = result.Status
	if err := s.persist(ctx, doc); err != nil {
		return nil, err
	}
	return result, nil
}

func statusForExpiry(days int) models.CertificateStatus {
	switch {
	case days < 0:
		return models.CertificateStatusExpired
	case days <= certificateExpiringDays:
		return models.CertificateStatusExpiringSoon
	}
	return models.CertificateStatusValid
}

// refreshCertificateStatus applies the expiry rule to a stored document. Beyond the
// warning window only Expired and Expiring Soon revert to Valid; manual states stay.
func refreshCertificateStatus(doc *models.CertificationDocument, today models.Date) {
	days := daysUntil(doc.ExpiryDate, today)
	if days == nil {
		return
	}
	next := statusForExpiry(*days)
	if next != models.CertificateStatusValid {
		doc.Status = next
		return
	}
	if doc.Status == models.CertificateStatusExpired || doc.Status == models.CertificateStatusExpiringSoon {
		doc.Status = models.CertificateStatusValid
	}
}

func renewalLeadDays(frequency string) int {
	switch frequency {
	case "Annual":
		return 90
	case "Bi-annual":
		return 60
	}
	return 30
}

func certificateTimeline(doc *models.CertificationDocument, today models.Date) []TimelineEvent {
	var events []TimelineEvent
	if doc.IssueDate != nil {
		events = append(events, TimelineEvent{Date: *doc.IssueDate, Event: "Issued", Status: "completed"})
	}
	if doc.LastRenewalDate != nil {
		events = append(events, TimelineEvent{Date: *doc.LastRenewalDate, Event: "Last Renewal", Status: "completed"})
	}
	if doc.NextRenewalDue != nil {
		status := "upcoming"
		if doc.NextRenewalDue.Before(today) {
			status = "overdue"
		}
		events = append(events, TimelineEvent{Date: *doc.NextRenewalDue, Event: "Renewal Due", Status: status})
	}
	if doc.ExpiryDate != nil {
		status := "upcoming"
		if doc.ExpiryDate.Before(today) {
			status = "expired"
		}
		events = append(events, TimelineEvent{Date: *doc.ExpiryDate, Event: "Expires", Status: status})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}

func expiryReminderMail(doc *models.CertificationDocument, days int) notification.Notification {
	body := fmt.Sprintf(
		"The certificate %s (%s) issued by %s expires on %s, in %d day(s).\n\nPlease arrange the renewal in time.",
		doc.DocumentTitle,
		orDefault(doc.CertificateNumber, "no number"),
		orDefault(doc.IssuingAuthority, "an unspecified authority"),
		dateString(doc.ExpiryDate),
		days,
	)
	return notification.Notification{
		Recipients:    []string{doc.ContactEmail},
		Subject:       "Certificate Expiry Reminder: " + doc.DocumentTitle,
		Body:          body,
		ReferenceType: models.ReferenceCertificate,
		ReferenceID:   &doc.ID,
	}
}

func md5Hex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
