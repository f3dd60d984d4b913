package workflow

import "github.com/jhoicas/Auditoria-api/internal/domain/entity"

// Máquina de estados de Lead:
//
//	new → qualified → in_progress → converted
//	 └────────┴────────────┴──────→ closed
//
// "converted" y "closed" son terminales. Cerrar un lead ya convertido o ya
// cerrado es una transición inválida, no un no-op.
var (
	LeadQualify = Transition{
		Name: "qualify",
		From: []string{entity.LeadStatusNew},
		To:   entity.LeadStatusQualified,
	}
	LeadStartProgress = Transition{
		Name: "start_progress",
		From: []string{entity.LeadStatusQualified},
		To:   entity.LeadStatusInProgress,
	}
	LeadConvert = Transition{
		Name: "convert",
		From: []string{entity.LeadStatusInProgress},
		To:   entity.LeadStatusConverted,
	}
	LeadClose = Transition{
		Name: "close",
		From: []string{entity.LeadStatusNew, entity.LeadStatusQualified, entity.LeadStatusInProgress},
		To:   entity.LeadStatusClosed,
	}
)
