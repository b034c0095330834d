package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/seu-repo/partassist/internal/domain"
)

// Memory is an in-process catalog backed by the seed data. It serves
// development, tests, and deployments that run without a database.
type Memory struct {
	mu    sync.RWMutex
	parts map[string]domain.Part
	order []string
}

func NewMemory() *Memory {
	m := &Memory{parts: make(map[string]domain.Part, len(seedParts))}
	for _, p := range seedParts {
		m.parts[p.PartNumber] = p
		m.order = append(m.order, p.PartNumber)
	}
	return m
}

// Seed returns the built-in parts, used by the ingest command.
func Seed() []domain.Part {
	out := make([]domain.Part, len(seedParts))
	copy(out, seedParts)
	return out
}

func (m *Memory) FindPart(ctx context.Context, partNumber string) (*domain.Part, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.parts[strings.ToUpper(partNumber)]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) SearchParts(ctx context.Context, query, applianceType string, limit int) ([]domain.Part, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q := strings.ToLower(query)
	var out []domain.Part
	for _, number := range m.order {
		p := m.parts[number]
		if applianceType != "" && p.ApplianceType != applianceType {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *Memory) FindByModel(ctx context.Context, modelNumber string, limit int) ([]domain.Part, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	model := strings.ToUpper(modelNumber)
	var out []domain.Part
	for _, number := range m.order {
		p := m.parts[number]
		for _, compat := range p.CompatibleModels {
			if strings.EqualFold(compat, model) {
				out = append(out, p)
				break
			}
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *Memory) CheckCompatibility(ctx context.Context, partNumber, modelNumber string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.parts[strings.ToUpper(partNumber)]
	if !ok {
		return false, nil
	}
	for _, compat := range p.CompatibleModels {
		if strings.EqualFold(compat, modelNumber) {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) PopularParts(ctx context.Context, applianceType string, limit int) ([]domain.Part, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Part
	for _, number := range m.order {
		p := m.parts[number]
		if applianceType != "" && p.ApplianceType != applianceType {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
