package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yasinga/yasinga/internal/models"
)

// keywordGroup ties trigger keywords (matched against the transaction
// text) to category name markers (matched against the user's category
// names). A group whose keywords hit but whose markers find no category
// does not stop the scan; later groups still get their chance.
type keywordGroup struct {
	name     string
	keywords []string
	markers  []string
}

var businessKeywordGroups = []keywordGroup{
	{
		name:     "suppliers",
		keywords: []string{"supplier", "stock", "inventory", "wholesale", "distributor", "vendor"},
		markers:  []string{"supplier", "stock", "inventory"},
	},
	{
		name:     "utilities",
		keywords: []string{"electricity", "power", "kplc", "water", "utilities", "rent"},
		markers:  []string{"operating", "utilities", "expense"},
	},
	{
		name:     "equipment",
		keywords: []string{"equipment", "maintenance", "repair", "machine", "appliance"},
		markers:  []string{"equipment", "maintenance"},
	},
	{
		name:     "marketing",
		keywords: []string{"marketing", "advertising", "promotion", "social media"},
		markers:  []string{"marketing"},
	},
	{
		name:     "staff",
		keywords: []string{"salary", "wage", "staff", "employee", "payroll"},
		markers:  []string{"staff", "payroll"},
	},
	{
		name:     "transport",
		keywords: []string{"delivery", "transport", "fuel", "vehicle", "logistics"},
		markers:  []string{"transport", "delivery"},
	},
	{
		name:     "licenses",
		keywords: []string{"license", "permit", "registration", "government", "tax"},
		markers:  []string{"license", "regulatory"},
	},
}

var personalKeywordGroups = []keywordGroup{
	{
		name:     "food",
		keywords: []string{"food", "lunch", "dinner", "restaurant", "cafe", "meal"},
		markers:  []string{"food", "dining"},
	},
	{
		name:     "transport",
		keywords: []string{"matatu", "uber", "taxi", "bus", "travel"},
		markers:  []string{"transport"},
	},
	{
		name:     "shopping",
		keywords: []string{"shopping", "clothes", "personal", "grocery", "supermarket"},
		markers:  []string{"shopping", "groceries"},
	},
	{
		name:     "healthcare",
		keywords: []string{"hospital", "clinic", "medical", "pharmacy", "doctor"},
		markers:  []string{"health", "medical"},
	},
	{
		name:     "entertainment",
		keywords: []string{"entertainment", "movie", "fun", "leisure", "sport"},
		markers:  []string{"entertainment"},
	},
}

var incomeMarkers = []string{"income", "sales", "revenue"}

var fallbackBusinessMarkers = []string{"general", "operating", "expense"}

// Amount thresholds in KES. Large sent amounts lean business stock
// purchases; small ones lean personal spending.
var (
	largeAmountThreshold = decimal.NewFromInt(5000)
	smallAmountThreshold = decimal.NewFromInt(500)
)

// classifierService implements ClassifierServiceInterface. It is
// stateless; classification depends only on the transaction and the
// category set handed in, so repeated calls give identical answers.
type classifierService struct {
	metrics MetricsRecorderInterface
}

// NewClassifierService creates a new classifier service
func NewClassifierService(metrics MetricsRecorderInterface) ClassifierServiceInterface {
	return &classifierService{
		metrics: metrics,
	}
}

// Classify picks a category for the transaction, walking the rule
// chain in order and returning on the first hit:
// received transactions go to an income-like business category;
// sent transactions try business keyword groups, personal keyword
// groups, amount heuristics, then the general-business fallback.
func (s *classifierService) Classify(transaction *models.Transaction, categories []models.Category) *models.Category {
	business, personal := splitByKind(categories)

	if transaction.Direction != models.DirectionSent {
		return s.record("income", firstMarked(business, incomeMarkers), firstOrNil(business))
	}

	surface := strings.ToLower(transaction.OtherParty + " " + transaction.Description)

	for _, group := range businessKeywordGroups {
		if !anyKeyword(surface, group.keywords) {
			continue
		}
		if match := firstMarked(business, group.markers); match != nil {
			return s.record(group.name, match, nil)
		}
	}

	for _, group := range personalKeywordGroups {
		if !anyKeyword(surface, group.keywords) {
			continue
		}
		if match := firstMarked(personal, group.markers); match != nil {
			return s.record(group.name, match, nil)
		}
	}

	if transaction.Amount.GreaterThanOrEqual(largeAmountThreshold) {
		if match := firstMarked(business, []string{"supplier", "stock"}); match != nil {
			return s.record("amount_large", match, nil)
		}
	} else if transaction.Amount.LessThanOrEqual(smallAmountThreshold) {
		if match := firstMarked(personal, []string{"personal", "miscellaneous"}); match != nil {
			return s.record("amount_small", match, nil)
		}
	}

	if match := firstMarked(business, fallbackBusinessMarkers); match != nil {
		return s.record("fallback", match, nil)
	}
	if len(business) > 0 {
		return s.record("fallback", &business[0], nil)
	}
	if len(personal) > 0 {
		return s.record("fallback", &personal[0], nil)
	}
	return s.record("unmatched", nil, nil)
}

// record emits the classification outcome metric and returns the first
// non-nil candidate.
func (s *classifierService) record(rule string, match, fallback *models.Category) *models.Category {
	result := match
	if result == nil {
		result = fallback
	}

	if s.metrics != nil {
		outcome := "matched"
		if result == nil {
			outcome = "unmatched"
		}
		s.metrics.IncrementCounter("classifier.outcome", map[string]string{
			"rule":   rule,
			"status": outcome,
		})
	}
	return result
}

func splitByKind(categories []models.Category) (business, personal []models.Category) {
	for _, category := range categories {
		if category.IsBusiness() {
			business = append(business, category)
		} else {
			personal = append(personal, category)
		}
	}
	return business, personal
}

func anyKeyword(surface string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(surface, keyword) {
			return true
		}
	}
	return false
}

// firstMarked returns the first category whose lowercased name contains
// any of the markers, preserving the caller's ordering for tie-breaks.
func firstMarked(categories []models.Category, markers []string) *models.Category {
	for i := range categories {
		name := strings.ToLower(categories[i].Name)
		for _, marker := range markers {
			if strings.Contains(name, marker) {
				return &categories[i]
			}
		}
	}
	return nil
}

func firstOrNil(categories []models.Category) *models.Category {
	if len(categories) == 0 {
		return nil
	}
	return &categories[0]
}
