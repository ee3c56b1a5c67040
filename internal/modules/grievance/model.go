// README: Grievance record plus tagged category/domain values (known label vs. verbatim raw text).
package grievance

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// KnownCategories is the fixed classification list the language model is asked
// to choose from. Classifier output is stored verbatim even when it is not a
// member of this list; the list only decides Category.Known.
var KnownCategories = []string{
	"Medical Assistance",
	"Security",
	"Divyangjan Facilities",
	"Facilities for Women with Special Needs",
	"Electrical Equipment",
	"Coach Cleanliness",
	"Punctuality",
	"Water Availability",
	"Coach Maintenance",
	"Catering & Vending Services",
	"Staff Behaviour",
	"Corruption/Bribery",
	"Bed Roll",
	"Miscellaneous",
}

// CategoryGoodsRelated is the sentinel category assigned on the goods path.
// It is never returned by the category classifier.
const CategoryGoodsRelated = "Goods Related"

// Category carries a classification label verbatim together with whether it
// matched the known enumeration. The raw label always wins: an unrecognized
// label is kept as-is, not rejected.
type Category struct {
	label string
	known bool
}

func ParseCategory(label string) Category {
	label = strings.TrimSpace(label)
	return Category{label: label, known: isKnownCategory(label)}
}

func isKnownCategory(label string) bool {
	if strings.EqualFold(label, CategoryGoodsRelated) {
		return true
	}
	for _, k := range KnownCategories {
		if strings.EqualFold(k, label) {
			return true
		}
	}
	return false
}

func (c Category) Label() string { return c.label }
func (c Category) Known() bool   { return c.known }

func (c Category) IsGoodsRelated() bool {
	return strings.EqualFold(c.label, CategoryGoodsRelated)
}

func (c Category) Value() (driver.Value, error) { return c.label, nil }

func (c *Category) Scan(v any) error {
	s, err := scanText(v)
	if err != nil {
		return fmt.Errorf("scan category: %w", err)
	}
	*c = Category{label: s, known: isKnownCategory(s)}
	return nil
}

const (
	DomainTrain   = "Train"
	DomainStation = "Station"
)

// Domain is the train/station tag. Like Category it keeps whatever text the
// classifier produced; only IsTrain drives branching.
type Domain struct {
	label string
	known bool
}

func ParseDomain(label string) Domain {
	label = strings.TrimSpace(label)
	known := strings.EqualFold(label, DomainTrain) || strings.EqualFold(label, DomainStation)
	return Domain{label: label, known: known}
}

func (d Domain) Label() string { return d.label }
func (d Domain) Known() bool   { return d.known }

// IsTrain gates the PNR prompt: the comparison is case-insensitive and
// anything that is not "train" counts as not-train.
func (d Domain) IsTrain() bool {
	return strings.EqualFold(d.label, DomainTrain)
}

func (d Domain) Value() (driver.Value, error) { return d.label, nil }

func (d *Domain) Scan(v any) error {
	s, err := scanText(v)
	if err != nil {
		return fmt.Errorf("scan domain: %w", err)
	}
	*d = ParseDomain(s)
	return nil
}

func scanText(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("unsupported type %T", v)
	}
}

// Record is the single entity produced by one completed intake session. It is
// assembled incrementally by the state machine and inserted exactly once.
type Record struct {
	ID                int64    `gorm:"column:id;primaryKey;autoIncrement"`
	Grievance         string   `gorm:"column:grievance;not null"`
	Category          Category `gorm:"column:category;type:text;not null"`
	TrainOrStation    Domain   `gorm:"column:train_or_station;type:text"`
	PNR               *string  `gorm:"column:pnr"`
	Date              *string  `gorm:"column:date"`
	Time              *string  `gorm:"column:time"`
	FollowUpResponses string   `gorm:"column:follow_up_responses;not null"`
}

func (Record) TableName() string { return "grievances" }
