package hierarchy

import (
	"strings"

	"github.com/cleared-dev/ledgertree/internal/model"
	"github.com/cleared-dev/ledgertree/internal/pathkey"
)

// Flatten converts hierarchy rows into deduplicated path options sorted by
// display label. Rows producing an identical path collapse into one option
// carrying the first row's code. Rows with no populated level are dropped.
func Flatten(rows []model.HierarchyRow, opts ...Option) []model.HierarchyOption {
	o := newOptions(opts)

	seen := make(map[string]struct{}, len(rows))
	var out []model.HierarchyOption
	for _, row := range rows {
		levels := row.Levels()
		path := pathkey.Compact(levels[:])
		if len(path) == 0 {
			continue
		}

		label := strings.Join(path, pathkey.LabelSeparator)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}

		out = append(out, model.HierarchyOption{
			Value:        path[len(path)-1],
			DisplayLabel: label,
			Code:         row.Code,
			FullPath:     path,
		})
	}

	sortByName(out, o.locale, func(opt model.HierarchyOption) string { return opt.DisplayLabel })
	return out
}
