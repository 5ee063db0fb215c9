package pricing

import (
	"context"
	"fmt"
	"sync"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// Quote is a price snapshot for a single session.
type Quote struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Service supplies the price snapshot attached to offerable slots and
// reservations.
type Service interface {
	PriceFor(ctx context.Context, class models.ResourceClass, window models.TimeWindow) (Quote, error)
}

// CatalogPricing prices sessions from the class catalog. Every successful
// lookup is remembered per class; when a class later disappears from the
// catalog (admin edit mid-flight), the last-known quote is served instead of
// failing the availability computation.
type CatalogPricing struct {
	catalog models.ClassCatalog

	mu        sync.RWMutex
	lastKnown map[models.ResourceClass]Quote
}

// NewCatalogPricing constructs the default pricing collaborator.
func NewCatalogPricing(catalog models.ClassCatalog) *CatalogPricing {
	return &CatalogPricing{
		catalog:   catalog,
		lastKnown: make(map[models.ResourceClass]Quote),
	}
}

func (p *CatalogPricing) PriceFor(_ context.Context, class models.ResourceClass, _ models.TimeWindow) (Quote, error) {
	if cfg, ok := p.catalog.Get(class); ok {
		quote := Quote{Amount: cfg.BasePrice, Currency: cfg.Currency}
		p.mu.Lock()
		p.lastKnown[class] = quote
		p.mu.Unlock()
		return quote, nil
	}

	p.mu.RLock()
	quote, ok := p.lastKnown[class]
	p.mu.RUnlock()
	if ok {
		return quote, nil
	}
	return Quote{}, fmt.Errorf("no price available for class %s", class)
}
