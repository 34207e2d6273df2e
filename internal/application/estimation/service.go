package estimation

import (
	"context"
	"math/rand"
	"sync"
	"unicode"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const (
	hoursPerChar   = 10
	maxJitterHours = 240
	hoursPerDay    = 24
)

// EstimateCommand carries one estimation request. Title and category are
// taken as-is; a missing title simply contributes zero characters.
type EstimateCommand struct {
	Title    string
	Category string
	Role     authorization.UserRole
}

type EstimateResult struct {
	ID         uint   `json:"id,omitempty"`
	Title      string `json:"title"`
	Estimation int    `json:"estimation"`
	Unit       string `json:"unit"`
}

// BatchItem is one ticket in a batch request. The ID is echoed back in the
// matching result so callers can correlate estimates with tickets.
type BatchItem struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Service produces effort estimates for tickets. The figure is a heuristic:
// proportional to the length of the title and category plus a random jitter.
// Admins get the raw hour count; regular users get it rounded up to days.
type Service struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger logger.Interface
}

func NewService(seed int64, logger logger.Interface) *Service {
	return &Service{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

func (s *Service) Estimate(ctx context.Context, cmd EstimateCommand) (*EstimateResult, error) {
	if !cmd.Role.IsValid() {
		return nil, errors.NewValidationError("invalid authorization level")
	}

	chars := countNonWhitespace(cmd.Title + cmd.Category)
	hours := chars*hoursPerChar + s.jitter() + 1

	result := &EstimateResult{Title: cmd.Title}
	if cmd.Role.IsAdmin() {
		result.Estimation = hours
		result.Unit = "hours"
	} else {
		result.Estimation = (hours + hoursPerDay - 1) / hoursPerDay
		result.Unit = "days"
	}

	s.logger.Debugw("estimation produced",
		"title", cmd.Title,
		"estimation", result.Estimation,
		"unit", result.Unit)

	return result, nil
}

// EstimateBatch estimates several tickets in one call. Batch estimation is
// reserved for admins, so results always come back in hours. An empty batch
// yields an empty result.
func (s *Service) EstimateBatch(ctx context.Context, items []BatchItem, role authorization.UserRole) ([]*EstimateResult, error) {
	if !role.IsAdmin() {
		return nil, errors.NewForbiddenError("batch estimation requires admin access")
	}

	results := make([]*EstimateResult, 0, len(items))
	for _, item := range items {
		result, err := s.Estimate(ctx, EstimateCommand{
			Title:    item.Title,
			Category: item.Category,
			Role:     role,
		})
		if err != nil {
			return nil, err
		}
		result.ID = item.ID
		results = append(results, result)
	}

	return results, nil
}

// jitter draws the random component. rand.Rand is not safe for concurrent
// use and one Service instance serves all requests, so the draw is locked.
func (s *Service) jitter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(maxJitterHours)
}

func countNonWhitespace(s string) int {
	count := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
