// Package memory keeps campaigns and ad groups in process memory. It backs
// local runs without PostgreSQL and end-to-end tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"campaign-manager/internal/core/domain"
)

// Store implements port.CampaignRepository and port.AdGroupRepository.
// Values are copied on the way in and out so callers never share state
// with the store.
type Store struct {
	mu        sync.RWMutex
	campaigns map[string]domain.Campaign
	adGroups  map[string]domain.AdGroup
}

func NewStore() *Store {
	return &Store{
		campaigns: make(map[string]domain.Campaign),
		adGroups:  make(map[string]domain.AdGroup),
	}
}

func (s *Store) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, copyCampaign(c))
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareStrings(a.ID, b.ID)
	})
	return out, nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	c = copyCampaign(c)
	return &c, nil
}

func (s *Store) CreateCampaign(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.ID]; ok {
		return fmt.Errorf("campaign %s already exists", c.ID)
	}
	c.AdGroups = nil
	s.campaigns[c.ID] = copyCampaign(c)
	return nil
}

func (s *Store) UpdateCampaignStatus(_ context.Context, id string, status domain.CampaignStatus, googleID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	c.Status = status
	if googleID != nil {
		v := *googleID
		c.GoogleCampaignID = &v
	}
	s.campaigns[id] = c
	return nil
}

// UpsertPerformance stores the latest reported metrics of a campaign.
func (s *Store) UpsertPerformance(_ context.Context, id string, p domain.Performance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	c.Performance = &p
	s.campaigns[id] = c
	return nil
}

func (s *Store) ListAdGroups(_ context.Context, campaignID string) ([]domain.AdGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.AdGroup
	for _, g := range s.adGroups {
		if g.CampaignID == campaignID && g.Status != domain.AdGroupRemoved {
			out = append(out, copyAdGroup(g))
		}
	}
	slices.SortFunc(out, func(a, b domain.AdGroup) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return compareStrings(a.ID, b.ID)
	})
	return out, nil
}

func (s *Store) GetAdGroup(_ context.Context, id string) (*domain.AdGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.adGroups[id]
	if !ok {
		return nil, fmt.Errorf("ad group %s: %w", id, domain.ErrNotFound)
	}
	g = copyAdGroup(g)
	return &g, nil
}

func (s *Store) CreateAdGroup(_ context.Context, g domain.AdGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[g.CampaignID]; !ok {
		return fmt.Errorf("campaign %s: %w", g.CampaignID, domain.ErrNotFound)
	}
	if _, ok := s.adGroups[g.ID]; ok {
		return fmt.Errorf("ad group %s already exists", g.ID)
	}
	s.adGroups[g.ID] = copyAdGroup(g)
	return nil
}

func (s *Store) UpdateAdGroup(_ context.Context, g domain.AdGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.adGroups[g.ID]
	if !ok {
		return fmt.Errorf("ad group %s: %w", g.ID, domain.ErrNotFound)
	}
	g.CampaignID = old.CampaignID
	g.CreatedAt = old.CreatedAt
	s.adGroups[g.ID] = copyAdGroup(g)
	return nil
}

func copyCampaign(c domain.Campaign) domain.Campaign {
	c.TargetCPA = clonePtr(c.TargetCPA)
	c.GoogleCampaignID = clonePtr(c.GoogleCampaignID)
	c.Performance = clonePtr(c.Performance)
	c.AdGroups = nil
	return c
}

func copyAdGroup(g domain.AdGroup) domain.AdGroup {
	g.CPCBid = clonePtr(g.CPCBid)
	g.CPMBid = clonePtr(g.CPMBid)
	return g
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
