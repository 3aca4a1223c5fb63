package hierarchy

import (
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cleared-dev/ledgertree/internal/ledgers"
)

// Option configures Flatten and Build.
type Option func(*options)

type options struct {
	locale language.Tag
	log    *zap.Logger
	onSkip func(ledgers.Skipped)
}

// WithLocale sets the collation locale used to order options and roots.
func WithLocale(tag language.Tag) Option {
	return func(o *options) { o.locale = tag }
}

// WithLogger sets the logger that reports skipped custom ledgers.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// OnSkip registers fn to be called for every nested ledger Build leaves out.
func OnSkip(fn func(ledgers.Skipped)) Option {
	return func(o *options) { o.onSkip = fn }
}

func newOptions(opts []Option) options {
	o := options{locale: language.English, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// sortByName orders items by key using the locale's collation. Ties keep
// their input order.
func sortByName[T any](items []T, tag language.Tag, key func(T) string) {
	c := collate.New(tag)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}
