package statement

import (
	"extrato-gateway/internal/service/statement/model"
	"strings"
)

// aggregate merges per-file outcomes, kept in submission order, into one Result.
func aggregate(results []model.FileResult) model.Result {
	var successful []model.FileSuccess
	var failed []model.FileFailure
	for _, r := range results {
		switch v := r.(type) {
		case model.FileSuccess:
			successful = append(successful, v)
		case model.FileFailure:
			failed = append(failed, v)
		}
	}

	if len(successful) == 0 {
		return model.Failure{
			Error: strings.Join(failureLines(failed), "; "),
			Cause: ErrAllFailed,
		}
	}

	out := model.Success{
		Banks:        make([]string, 0, len(successful)),
		Transactions: make([]model.Transaction, 0),
		FileNames:    make([]string, 0, len(successful)),
	}

	seen := make(map[string]struct{}, len(successful))
	for _, r := range successful {
		out.Transactions = append(out.Transactions, r.Transactions...)
		out.FileNames = append(out.FileNames, r.FileName)

		if r.Bank == "" {
			continue
		}
		if _, ok := seen[r.Bank]; ok {
			continue
		}
		seen[r.Bank] = struct{}{}
		out.Banks = append(out.Banks, r.Bank)
	}
	out.TotalTransactions = len(out.Transactions)

	if len(failed) > 0 {
		out.Errors = failureLines(failed)
	}

	return out
}

func failureLines(failed []model.FileFailure) []string {
	lines := make([]string, 0, len(failed))
	for _, f := range failed {
		lines = append(lines, f.FileName+": "+f.Error)
	}
	return lines
}
