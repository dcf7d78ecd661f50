package service

import (
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	"github.com/aaravmahajanofficial/storefront-studio/internal/state"
)

type SearchState struct {
	Query   string           `json:"query"`
	Open    bool             `json:"open"`
	Results []models.Product `json:"results"`
}

// SearchService keeps the storefront search box: a query, whether the results
// panel is open, and the matching products. Closing the panel clears the query.
type SearchService struct {
	query   *state.Signal[string]
	open    *state.Signal[bool]
	results *state.Memo[[]models.Product]
}

func NewSearchService(catalog *SiteService) *SearchService {
	s := &SearchService{
		query: state.NewSignal(""),
		open:  state.NewSignal(false),
	}

	s.results = state.NewMemo(func() []models.Product {
		return SearchProducts(catalog.Products(), s.query.Get())
	}, s.query, catalog.products)

	s.open.Subscribe(func(open bool) {
		if !open && s.query.Get() != "" {
			s.query.Set("")
		}
	})

	return s
}

// SetQuery stores query and opens the panel when query is not empty.
func (s *SearchService) SetQuery(query string) {
	s.query.Set(query)
	if query != "" && !s.open.Get() {
		s.open.Set(true)
	}
}

func (s *SearchService) OpenPanel() {
	s.open.Set(true)
}

func (s *SearchService) ClosePanel() {
	s.open.Set(false)
}

func (s *SearchService) Clear() {
	s.query.Set("")
}

func (s *SearchService) Query() string {
	return s.query.Get()
}

func (s *SearchService) IsOpen() bool {
	return s.open.Get()
}

func (s *SearchService) Results() []models.Product {
	return s.results.Get()
}

func (s *SearchService) State() SearchState {
	return SearchState{
		Query:   s.query.Get(),
		Open:    s.open.Get(),
		Results: s.results.Get(),
	}
}
