package core

// DayGroup is one display bucket of transactions sharing a calendar day.
type DayGroup struct {
	Label        string
	Transactions []Transaction
}

// CalculateBalance reduces a transaction sequence to the net balance:
// income adds, expense subtracts. Empty input yields 0. The result is
// additive over concatenation, so partial sums can be combined freely.
func CalculateBalance(txs []Transaction) int64 {
	var total int64
	for _, t := range txs {
		if t.Type == Income {
			total += t.Amount
		} else {
			total -= t.Amount
		}
	}
	return total
}

// GroupByDay partitions transactions into buckets keyed by local calendar
// day. Bucket order follows first occurrence in the input sequence (which
// the ledger keeps newest-first); within a bucket the original relative
// order is preserved.
func GroupByDay(txs []Transaction) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)
	for _, t := range txs {
		label := FormatDayLabel(t.Time())
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DayGroup{Label: label})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}
	return groups
}
