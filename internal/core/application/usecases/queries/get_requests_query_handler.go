package queries

import (
	"context"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/domain/model/request"
)

type GetRequestsQueryHandler struct {
	reader EngineReader
}

func NewGetRequestsQueryHandler(reader EngineReader) GetRequestsQueryHandler {
	return GetRequestsQueryHandler{reader: reader}
}

func (h GetRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetRequestsQuery,
) ([]GetRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	out := make([]GetRequestsQueryResponse, 0)
	err := h.reader.Query(ctx, func(e *engine.AssignmentEngine) {
		prs := e.Requests()
		if st, ok := query.Status(); ok {
			prs = e.RequestsByStatus(st)
		}
		for _, pr := range prs {
			out = append(out, toRequestResponse(pr))
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toRequestResponse(pr *request.PickingRequest) GetRequestsQueryResponse {
	r := GetRequestsQueryResponse{
		ID:           pr.ID(),
		Status:       pr.Status().String(),
		CorrectOrder: make([]string, 0, request.ItemsPerRequest),
		Remaining:    pr.Remaining(),
		Orders:       make([]OrderResponse, 0, request.OrdersPerRequest),
	}
	for _, sku := range pr.CorrectOrder() {
		r.CorrectOrder = append(r.CorrectOrder, sku.String())
	}
	for _, o := range pr.Orders() {
		r.Orders = append(r.Orders, OrderResponse{
			Color: o.Color(),
			Model: o.Model(),
			Front: o.FrontSKU().String(),
			Back:  o.BackSKU().String(),
		})
	}
	return r
}
