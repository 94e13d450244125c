package models

import (
	"math/rand"
	"testing"
)

func TestSummarize(t *testing.T) {
	transactions := []EventTransaction{
		{Type: TransactionMasuk, Amount: 100000},
		{Type: TransactionMasuk, Amount: 25000},
		{Type: TransactionKeluar, Amount: 30000},
	}

	summary := Summarize(transactions)
	if summary.TotalMasuk != 125000 {
		t.Errorf("TotalMasuk = %v, want 125000", summary.TotalMasuk)
	}
	if summary.TotalKeluar != 30000 {
		t.Errorf("TotalKeluar = %v, want 30000", summary.TotalKeluar)
	}
	if summary.Saldo != 95000 {
		t.Errorf("Saldo = %v, want 95000", summary.Saldo)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalMasuk != 0 || summary.TotalKeluar != 0 || summary.Saldo != 0 {
		t.Fatalf("empty ledger summary = %+v, want zeros", summary)
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	transactions := []EventTransaction{
		{Type: TransactionMasuk, Amount: 10000},
		{Type: TransactionKeluar, Amount: 4000},
		{Type: TransactionMasuk, Amount: 2500},
		{Type: TransactionKeluar, Amount: 1500},
		{Type: TransactionMasuk, Amount: 70000},
	}
	want := Summarize(transactions)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		r.Shuffle(len(transactions), func(a, b int) {
			transactions[a], transactions[b] = transactions[b], transactions[a]
		})
		if got := Summarize(transactions); got != want {
			t.Fatalf("shuffled summary = %+v, want %+v", got, want)
		}
	}
}

func TestSummarizeIgnoresUnknownTypes(t *testing.T) {
	transactions := []EventTransaction{
		{Type: TransactionMasuk, Amount: 5000},
		{Type: "koreksi", Amount: 99999},
	}
	summary := Summarize(transactions)
	if summary.TotalMasuk != 5000 || summary.Saldo != 5000 {
		t.Fatalf("summary = %+v, unknown type must not count", summary)
	}
}
