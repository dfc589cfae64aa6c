package pricing

import (
	"strings"
	"sync"
	"time"

	"pricing-simulator/internal/model"
)

// Session owns one independent (catalog, observations, elasticities) triple.
// Each load call replaces its table wholesale; a mutex guarantees compute
// operations always see a consistent triple. Construct one per logical
// session rather than sharing process-global state.
type Session struct {
	mu     sync.RWMutex
	params Params

	products []model.Product

	observations []model.Observation
	obsByProduct map[string][]model.Observation

	elasticities map[string]model.ElasticityResult
	fits         map[string]fit
}

func NewSession(params Params) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Session{params: params}, nil
}

func (s *Session) Params() Params {
	return s.params
}

// LoadCatalog validates and installs a new product catalog, replacing any
// prior catalog. Catalog iteration order is load order.
func (s *Session) LoadCatalog(rows []model.ProductRow) error {
	missing := missingSet{}
	products := make([]model.Product, 0, len(rows))

	for _, r := range rows {
		if r.ProductID == nil || strings.TrimSpace(*r.ProductID) == "" {
			missing.add("product_id")
		}
		if r.ProductName == nil {
			missing.add("product_name")
		}
		if r.Category == nil {
			missing.add("category")
		}
		if r.BaseCost == nil {
			missing.add("base_cost")
		}
		if r.CurrentPrice == nil {
			missing.add("current_price")
		}
		if len(missing.names) > 0 {
			continue
		}
		products = append(products, model.Product{
			ProductID:    *r.ProductID,
			ProductName:  *r.ProductName,
			Category:     *r.Category,
			BaseCost:     *r.BaseCost,
			CurrentPrice: *r.CurrentPrice,
		})
	}
	if len(missing.names) > 0 {
		return &ValidationError{Table: "product", Fields: missing.names}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	return nil
}

// LoadObservations validates and installs the historical price/volume table,
// replacing any prior one. Dates are normalized; rows with non-positive
// price or volume are accepted here and filtered at estimation time.
func (s *Session) LoadObservations(rows []model.ObservationRow) error {
	missing := missingSet{}
	observations := make([]model.Observation, 0, len(rows))

	for _, r := range rows {
		if r.Date == nil {
			missing.add("date")
		}
		if r.ProductID == nil || strings.TrimSpace(*r.ProductID) == "" {
			missing.add("product_id")
		}
		if r.Price == nil {
			missing.add("price")
		}
		if r.Volume == nil {
			missing.add("volume")
		}
		if len(missing.names) > 0 {
			continue
		}
		date, err := parseDate(*r.Date)
		if err != nil {
			missing.add("date")
			continue
		}
		observations = append(observations, model.Observation{
			Date:      date,
			ProductID: *r.ProductID,
			Price:     *r.Price,
			Volume:    *r.Volume,
		})
	}
	if len(missing.names) > 0 {
		return &ValidationError{Table: "historical", Fields: missing.names}
	}

	byProduct := make(map[string][]model.Observation)
	for _, o := range observations {
		byProduct[o.ProductID] = append(byProduct[o.ProductID], o)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.observations = observations
	s.obsByProduct = byProduct
	return nil
}

// Products returns the catalog in load order.
func (s *Session) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Elasticity returns the computed result for a product, if any.
func (s *Session) Elasticity(productID string) (model.ElasticityResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.elasticities[productID]
	return r, ok
}

// elasticityOrDefault must be called with the lock held.
func (s *Session) elasticityOrDefault(productID string) float64 {
	if r, ok := s.elasticities[productID]; ok {
		return r.Elasticity
	}
	return s.params.DefaultElasticity
}

// baseVolume returns the reference demand level for a product: the mean of
// all historical volumes (no validity filter), or the configured fallback
// when no history exists. Must be called with the lock held.
func (s *Session) baseVolume(productID string) float64 {
	obs := s.obsByProduct[productID]
	if len(obs) == 0 {
		return s.params.FallbackBaseVolume
	}
	sum := 0.0
	for _, o := range obs {
		sum += o.Volume
	}
	return sum / float64(len(obs))
}

// parseDate normalizes the date formats accepted in observation rows.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	_, err := time.Parse("2006-01-02", s)
	return time.Time{}, err
}

// missingSet collects distinct missing field names in first-seen order.
type missingSet struct {
	names []string
	seen  map[string]bool
}

func (m *missingSet) add(name string) {
	if m.seen == nil {
		m.seen = map[string]bool{}
	}
	if !m.seen[name] {
		m.seen[name] = true
		m.names = append(m.names, name)
	}
}
