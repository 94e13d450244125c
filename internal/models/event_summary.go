package models

// EventSummary is the derived financial summary of an event ledger. It is
// never persisted; it is recomputed from the transaction set on every read
// so the settlement invariant always sees fresh totals.
type EventSummary struct {
	TotalMasuk  float64 `json:"total_masuk"`
	TotalKeluar float64 `json:"total_keluar"`
	Saldo       float64 `json:"saldo"`
}

// Summarize computes the running totals of a transaction set. Pure O(n)
// scan, independent of insertion order.
func Summarize(transactions []EventTransaction) EventSummary {
	var summary EventSummary
	for _, t := range transactions {
		switch t.Type {
		case TransactionMasuk:
			summary.TotalMasuk += t.Amount
		case TransactionKeluar:
			summary.TotalKeluar += t.Amount
		}
	}
	summary.Saldo = summary.TotalMasuk - summary.TotalKeluar
	return summary
}
