package translation

import (
	"sync"

	"justnest/models"

	"go.uber.org/zap"
)

// TranslationService serves the interface dictionaries of each language.
type TranslationService interface {
	Languages() []string
	Get(language string) (map[string]string, error)
	Merge(req models.TranslationUpdate) (created bool, err error)
	SeedFromFile(path string) (int, error)
}

// Catalog keeps the dictionaries in memory. It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	dicts  map[string]map[string]string
	Logger *zap.Logger
}

func NewCatalog(logger *zap.Logger) *Catalog {
	return &Catalog{dicts: make(map[string]map[string]string), Logger: logger}
}
