package services

import (
	"fmt"

	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/app/store"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
	"github.com/uniaid/aidtrack/internal/pkg/validation"
)

// SubmitRequest is the aid application payload. Documents are references
// previously returned by the attachment manager; the submitter identity is
// recorded as given and not checked against the account store.
type SubmitRequest struct {
	Username    string `validate:"required"`
	AidType     string `validate:"required"`
	Description string `validate:"required"`
	Documents   []string
}

// Summary is the status breakdown of every request in the store.
type Summary struct {
	Pending  int
	Accepted int
	Declined int
	Total    int
}

// AidService is the aid-request workflow engine: submission, lookup and the
// department-gated review that moves a request to its terminal status.
type AidService struct {
	requests *store.AidRequestStore
	guidance *store.GuidanceStore
}

// NewAidService creates a new aid service instance.
func NewAidService(requests *store.AidRequestStore, guidance *store.GuidanceStore) *AidService {
	return &AidService{
		requests: requests,
		guidance: guidance,
	}
}

// Submit validates the payload and creates a Pending request, returning the
// assigned request ID.
func (s *AidService) Submit(req SubmitRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}
	if !models.ValidAidType(req.AidType) {
		return "", fmt.Errorf("aid type %q: %w", req.AidType, apperrors.ErrUnknownAidType)
	}

	request := &models.AidRequest{
		Username:    req.Username,
		AidType:     req.AidType,
		Description: req.Description,
		Documents:   req.Documents,
	}
	id, err := s.requests.Create(request)
	if err != nil {
		return "", err
	}

	logger.Info().Str("request_id", id).Str("aid_type", req.AidType).Str("username", req.Username).Msg("Aid request submitted")
	return id, nil
}

// Lookup retrieves a request by ID.
func (s *AidService) Lookup(requestID string) (*models.AidRequest, error) {
	return s.requests.Get(requestID)
}

// List returns every request in submission order.
func (s *AidService) List() []*models.AidRequest {
	return s.requests.List()
}

// Review applies a terminal decision to a request. The reviewer's department
// must equal the request's aid type verbatim, and a request that has already
// been decided stays decided.
func (s *AidService) Review(requestID, reviewerDepartment string, decision models.AidStatus) (*models.AidRequest, error) {
	if !decision.Terminal() {
		return nil, fmt.Errorf("decision %q: %w", decision, apperrors.ErrValidationFailed)
	}

	request, err := s.requests.Get(requestID)
	if err != nil {
		return nil, err
	}
	if reviewerDepartment != request.AidType {
		return nil, fmt.Errorf("department %q cannot review %q requests: %w",
			reviewerDepartment, request.AidType, apperrors.ErrDepartmentMismatch)
	}
	if request.Status.Terminal() {
		return nil, fmt.Errorf("aid request %q is already %s: %w", requestID, request.Status, apperrors.ErrAlreadyDecided)
	}

	if err := s.requests.SetStatus(requestID, decision); err != nil {
		return nil, err
	}

	logger.Info().Str("request_id", requestID).Str("decision", string(decision)).Msg("Aid request reviewed")
	return request, nil
}

// ReviewBy resolves the reviewer's department from the guidance store and
// delegates to Review.
func (s *AidService) ReviewBy(guidanceUsername, requestID string, decision models.AidStatus) (*models.AidRequest, error) {
	reviewer, err := s.guidance.Get(guidanceUsername)
	if err != nil {
		return nil, err
	}
	return s.Review(requestID, reviewer.Department, decision)
}

// SummaryCounts tallies requests by status.
func (s *AidService) SummaryCounts() Summary {
	summary := Summary{}
	for _, req := range s.requests.List() {
		switch req.Status {
		case models.StatusAccepted:
			summary.Accepted++
		case models.StatusDeclined:
			summary.Declined++
		default:
			summary.Pending++
		}
		summary.Total++
	}
	return summary
}
