package services

import (
	"context"

	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
)

// DelegationService answers whether one user may act on behalf of another.
// A relative may book for a senior citizen only when an explicit link exists
// between the two and that link carries booking permission.
type DelegationService struct {
	relativeRepo repositories.RelativeRepository
}

func NewDelegationService(relativeRepo repositories.RelativeRepository) *DelegationService {
	return &DelegationService{relativeRepo: relativeRepo}
}

// CanBookFor reports whether relativeID is allowed to create bookings for
// seniorCitizenID. A missing link is not an error, it simply means no access.
func (s *DelegationService) CanBookFor(ctx context.Context, seniorCitizenID, relativeID string) (bool, error) {
	edge, err := s.relativeRepo.GetEdge(ctx, seniorCitizenID, relativeID)
	if err != nil {
		return false, err
	}
	if edge == nil {
		return false, nil
	}
	return edge.CanBookServices, nil
}
