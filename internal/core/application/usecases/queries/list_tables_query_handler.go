package queries

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/ports"
)

type ListTablesQueryHandler struct {
	reader ports.TableReader
}

func NewListTablesQueryHandler(reader ports.TableReader) ListTablesQueryHandler {
	return ListTablesQueryHandler{reader: reader}
}

// Handle returns tables ordered by number. Numeric numbers sort numerically
// ("2" before "10") and come before the others, which sort as text.
func (h ListTablesQueryHandler) Handle(ctx context.Context, query ListTablesQuery) ([]*table.Table, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables, err := h.reader.ListTables(ctx, query.TenantID())
	if err != nil {
		return nil, err
	}
	if tables == nil {
		tables = make([]*table.Table, 0)
	}
	slices.SortStableFunc(tables, compareTableNumbers)
	return tables, nil
}

func compareTableNumbers(a, b *table.Table) int {
	na, errA := strconv.Atoi(a.Number())
	nb, errB := strconv.Atoi(b.Number())
	switch {
	case errA == nil && errB == nil:
		return cmp.Or(cmp.Compare(na, nb), cmp.Compare(a.Number(), b.Number()))
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return cmp.Compare(a.Number(), b.Number())
}
