package adapters

import (
	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/session"
)

func MapSessionInfoToAPI(info session.Info) api.Session {
	return api.Session{
		ID:         info.ID,
		ClientName: info.ClientName,
		CreatedAt:  info.CreatedAt,
		UpdatedAt:  info.UpdatedAt,
		Exporting:  info.Exporting,
	}
}

func MapDraftSummaryToAPI(d domain.DraftSummary) api.Draft {
	return api.Draft{ID: d.ID, ClientName: d.ClientName, UpdatedAt: d.UpdatedAt}
}
