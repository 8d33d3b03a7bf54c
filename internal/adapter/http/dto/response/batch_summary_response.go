package response

import "uaizouk_billing/internal/usecase"

type BatchSummaryResponse struct {
	Processed int      `json:"processed"`
	Updated   int      `json:"updated"`
	Errored   int      `json:"errored"`
	Warnings  []string `json:"warnings,omitempty"`
}

func FromBatchSummary(s usecase.BatchSummary) BatchSummaryResponse {
	return BatchSummaryResponse{
		Processed: s.Processed,
		Updated:   s.Updated,
		Errored:   s.Errored,
		Warnings:  s.Warnings,
	}
}
