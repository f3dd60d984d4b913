package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Reproducen el contrato de los repositorios Postgres:
//   - id de otro tenant = nil, nunca error
//   - UpdateStatus es guard + escritura bajo un solo lock (como la sentencia
//     condicional UPDATE ... WHERE status = ANY($from)) y sella updated_at
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuditRepo struct {
	mu     sync.Mutex
	audits map[string]*entity.Audit
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{audits: make(map[string]*entity.Audit)}
}

func (f *fakeAuditRepo) Create(_ context.Context, audit *entity.Audit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *audit
	f.audits[audit.ID] = &cp
	return nil
}

func (f *fakeAuditRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Audit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.audits[id]
	if !ok || a.TenantID != tenantID {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAuditRepo) ListByTenant(_ context.Context, tenantID, status string, limit, offset int) ([]*entity.Audit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Audit
	for _, a := range f.audits {
		if a.TenantID != tenantID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		cp := *a
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeAuditRepo) Update(_ context.Context, audit *entity.Audit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.audits[audit.ID]; ok && existing.TenantID == audit.TenantID {
		cp := *audit
		f.audits[audit.ID] = &cp
	}
	return nil
}

func (f *fakeAuditRepo) Delete(_ context.Context, tenantID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.audits[id]; ok && a.TenantID == tenantID {
		delete(f.audits, id)
	}
	return nil
}

func (f *fakeAuditRepo) UpdateStatus(_ context.Context, tenantID, id string, from []string, to string) (*entity.Audit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.audits[id]
	if !ok || a.TenantID != tenantID {
		return nil, nil
	}
	for _, s := range from {
		if a.Status == s {
			a.Status = to
			a.UpdatedAt = time.Now()
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeLeadRepo struct {
	mu    sync.Mutex
	leads map[string]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*entity.Lead)}
}

func (f *fakeLeadRepo) Create(_ context.Context, lead *entity.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *lead
	f.leads[lead.ID] = &cp
	return nil
}

func (f *fakeLeadRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leads[id]
	if !ok || l.TenantID != tenantID {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeadRepo) ListByTenant(_ context.Context, tenantID, status string, limit, offset int) ([]*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Lead
	for _, l := range f.leads {
		if l.TenantID != tenantID {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		cp := *l
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeLeadRepo) Update(_ context.Context, lead *entity.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.leads[lead.ID]; ok && existing.TenantID == lead.TenantID {
		cp := *lead
		f.leads[lead.ID] = &cp
	}
	return nil
}

func (f *fakeLeadRepo) Delete(_ context.Context, tenantID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.leads[id]; ok && l.TenantID == tenantID {
		delete(f.leads, id)
	}
	return nil
}

func (f *fakeLeadRepo) UpdateStatus(_ context.Context, tenantID, id string, from []string, to string) (*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leads[id]
	if !ok || l.TenantID != tenantID {
		return nil, nil
	}
	for _, s := range from {
		if l.Status == s {
			l.Status = to
			l.UpdatedAt = time.Now()
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}
