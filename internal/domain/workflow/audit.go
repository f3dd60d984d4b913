package workflow

import "github.com/jhoicas/Auditoria-api/internal/domain/entity"

// Máquina de estados de Audit:
//
//	draft → review → approved → closed
//	          └──────→ draft (reject)
//
// "closed" es terminal. No existe ruta directa draft→approved ni draft→closed.
var (
	AuditSubmitForReview = Transition{
		Name: "submit_for_review",
		From: []string{entity.AuditStatusDraft},
		To:   entity.AuditStatusReview,
	}
	AuditApprove = Transition{
		Name: "approve",
		From: []string{entity.AuditStatusReview},
		To:   entity.AuditStatusApproved,
	}
	AuditReject = Transition{
		Name: "reject",
		From: []string{entity.AuditStatusReview},
		To:   entity.AuditStatusDraft,
	}
	AuditClose = Transition{
		Name: "close",
		From: []string{entity.AuditStatusApproved},
		To:   entity.AuditStatusClosed,
	}
)
