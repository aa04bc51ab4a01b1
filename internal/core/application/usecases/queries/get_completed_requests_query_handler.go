package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCompletedRequestsQueryHandler reads completed requests with a direct
// SQL query.
type GetCompletedRequestsQueryHandler struct {
	db *gorm.DB
}

func NewGetCompletedRequestsQueryHandler(db *gorm.DB) GetCompletedRequestsQueryHandler {
	return GetCompletedRequestsQueryHandler{db: db}
}

// Handle returns completed requests ordered by completion time, then id.
func (h GetCompletedRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetCompletedRequestsQuery,
) ([]GetCompletedRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	out := make([]GetCompletedRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			request_id,
			correct_order,
			completed_at
		FROM completed_requests
		ORDER BY completed_at, request_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r GetCompletedRequestsQueryResponse
		var correctOrder pq.StringArray

		if err = rows.Scan(&r.RequestID, &correctOrder, &r.CompletedAt); err != nil {
			return nil, err
		}
		r.CorrectOrder = []string(correctOrder)
		r.CompletedAt = r.CompletedAt.UTC()
		out = append(out, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
