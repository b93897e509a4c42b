package ledger

import "github.com/shopspring/decimal"

// Sum reduces the transactions matched by pred to a total amount. Pure
// reduction, no side effects.
func Sum(txs []Transaction, pred func(Transaction) bool) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if pred == nil || pred(tx) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Count returns how many transactions match pred.
func Count(txs []Transaction, pred func(Transaction) bool) int {
	n := 0
	for _, tx := range txs {
		if pred == nil || pred(tx) {
			n++
		}
	}
	return n
}

// ByType matches transactions of the given direction.
func ByType(t TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// ByStatus matches transactions in the given state.
func ByStatus(st TransactionStatus) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Status == st }
}
