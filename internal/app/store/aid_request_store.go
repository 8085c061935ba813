package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
)

const aidIDPrefix = "AID"

// AidRequestStore owns the aid-request records and their JSON document. It is
// the single source of truth: the workflow reads and mutates through this API
// and never holds a private copy.
type AidRequestStore struct {
	path     string
	requests map[string]*models.AidRequest
	// highest numeric ID suffix ever observed; minting from this instead of
	// the map size keeps IDs unique no matter what the document has been
	// through
	maxSeq int
}

// NewAidRequestStore creates a store backed by the given JSON document.
func NewAidRequestStore(path string) *AidRequestStore {
	return &AidRequestStore{
		path:     path,
		requests: make(map[string]*models.AidRequest),
	}
}

// Load reads the JSON document if present and non-empty. A document that does
// not parse is logged and the store starts empty rather than failing the
// session.
func (s *AidRequestStore) Load() error {
	s.requests = make(map[string]*models.AidRequest)
	s.maxSeq = 0

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil
	}

	var requests []*models.AidRequest
	if err := json.Unmarshal(content, &requests); err != nil {
		logger.Warn().Err(err).Str("file", s.path).Msg("Aid request document is not valid JSON, starting empty")
		return nil
	}

	for _, req := range requests {
		if req.Documents == nil {
			req.Documents = []string{}
		}
		s.requests[req.RequestID] = req
		if seq, ok := idSequence(req.RequestID, aidIDPrefix); ok && seq > s.maxSeq {
			s.maxSeq = seq
		}
	}
	return nil
}

// NextID returns the ID the next submission will be assigned, zero-padded to
// four digits.
func (s *AidRequestStore) NextID() string {
	return fmt.Sprintf("%s%04d", aidIDPrefix, s.maxSeq+1)
}

// Get retrieves a request by ID.
func (s *AidRequestStore) Get(requestID string) (*models.AidRequest, error) {
	req, ok := s.requests[requestID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("aid request %q not found", requestID))
	}
	return req, nil
}

// List returns all requests ordered by request ID, which for minted IDs is
// submission order.
func (s *AidRequestStore) List() []*models.AidRequest {
	requests := make([]*models.AidRequest, 0, len(s.requests))
	for _, req := range s.requests {
		requests = append(requests, req)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].RequestID < requests[j].RequestID })
	return requests
}

// Len returns the number of requests in the store.
func (s *AidRequestStore) Len() int {
	return len(s.requests)
}

// Create assigns the next ID, forces the status to Pending and persists the
// whole document. The assigned ID is returned.
func (s *AidRequestStore) Create(req *models.AidRequest) (string, error) {
	req.RequestID = s.NextID()
	req.Status = models.StatusPending
	if req.Documents == nil {
		req.Documents = []string{}
	}

	s.requests[req.RequestID] = req
	if err := s.persist(); err != nil {
		delete(s.requests, req.RequestID)
		return "", err
	}
	s.maxSeq++
	return req.RequestID, nil
}

// SetStatus overwrites a request's status and persists the whole document.
func (s *AidRequestStore) SetStatus(requestID string, status models.AidStatus) error {
	req, ok := s.requests[requestID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("aid request %q not found", requestID))
	}
	previous := req.Status
	req.Status = status
	if err := s.persist(); err != nil {
		req.Status = previous
		return err
	}
	return nil
}

// persist serializes every request as an ordered JSON array and overwrites
// the document, matching the legacy four-space indented layout.
func (s *AidRequestStore) persist() error {
	content, err := json.MarshalIndent(s.List(), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode aid requests: %w", err)
	}
	return writeFileAtomic(s.path, content)
}
