package contact

import (
	"github.com/lexofis/core/internal/pkg/fallback"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Variant names one physical form of the contacts-family table. Deployments
// disagree on both the table name and the spelling of "not yet handled".
type Variant struct {
	Table     string
	NewStatus string
}

// Variants in probe order. The first is the canonical schema that
// auto-migration creates for new deployments.
var Variants = []Variant{
	{Table: "contact_messages", NewStatus: "new"},
	{Table: "contacts", NewStatus: "new"},
	{Table: "contact_submissions", NewStatus: "unread"},
}

// ResolveVariant pins the active contacts table once at startup. A configured
// table name wins outright; otherwise each known variant is probed in order
// and the first that answers a count query is kept. Exhaustion falls back to
// the canonical variant, whose queries will then degrade per the read policy.
func ResolveVariant(db *gorm.DB, pinned string, log *zap.Logger) Variant {
	if pinned != "" {
		for _, v := range Variants {
			if v.Table == pinned {
				return v
			}
		}
		log.Warn("contacts_table names an unknown variant, assuming status vocabulary 'new'",
			zap.String("table", pinned))
		return Variant{Table: pinned, NewStatus: "new"}
	}

	if db == nil {
		return Variants[0]
	}

	probes := make([]fallback.Probe[Variant], 0, len(Variants))
	for _, v := range Variants {
		v := v
		probes = append(probes, fallback.Probe[Variant]{
			Name: v.Table,
			Run: func() (Variant, error) {
				var n int64
				if err := db.Table(v.Table).Count(&n).Error; err != nil {
					return Variant{}, err
				}
				return v, nil
			},
		})
	}

	v, table, err := fallback.First(probes...)
	if err != nil {
		log.Warn("no contacts-family table answered, keeping canonical schema", zap.Error(err))
		return Variants[0]
	}
	log.Info("resolved contacts table", zap.String("table", table))
	return v
}
