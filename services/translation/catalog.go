package translation

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"justnest/models"
	"justnest/utils"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// NotFoundError reports a missing language together with the ones on offer.
type NotFoundError struct {
	Language  string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Translations for language '%s' not found", e.Language)
}

var updateMessages = map[string]string{
	"language":     "Language must be a lowercase language code",
	"translations": "Translations data is required",
}

// Languages lists the codes that have a dictionary, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.dicts))
}

// Get returns a copy of the dictionary of language.
func (c *Catalog) Get(language string) (map[string]string, error) {
	c.mu.RLock()
	dict, ok := c.dicts[language]
	c.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Language: language, Available: c.Languages()}
	}
	return maps.Clone(dict), nil
}

// Merge adds the entries of req to its language, creating the dictionary if needed.
// Keys are trimmed and values are stripped of markup; blank keys are skipped.
func (c *Catalog) Merge(req models.TranslationUpdate) (bool, error) {
	req.Language = strings.TrimSpace(req.Language)
	if errs := utils.ValidateStruct(req, updateMessages); len(errs) > 0 {
		return false, utils.NewValidationError(errs)
	}

	entries := make(map[string]string, len(req.Translations))
	for k, v := range req.Translations {
		if k = strings.TrimSpace(k); k != "" {
			entries[k] = utils.CleanText(v)
		}
	}
	if len(entries) == 0 {
		return false, utils.NewValidationError([]models.FieldError{
			{Field: "translations", Message: updateMessages["translations"]},
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	dict, exists := c.dicts[req.Language]
	if !exists {
		dict = make(map[string]string, len(entries))
		c.dicts[req.Language] = dict
	}
	maps.Copy(dict, entries)
	c.Logger.Info("Translations updated", zap.String("language", req.Language), zap.Int("entries", len(entries)))
	return !exists, nil
}

// seedFile is the layout of the translation seed document.
type seedFile struct {
	Translations map[string]map[string]string `yaml:"translations"`
}

// LoadSeed parses a YAML translation seed document.
func LoadSeed(path string) (map[string]map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation seed %s: %w", path, err)
	}
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse translation seed %s: %w", path, err)
	}
	for lang, dict := range doc.Translations {
		if len(dict) == 0 {
			return nil, fmt.Errorf("translation seed language %q is empty", lang)
		}
	}
	return doc.Translations, nil
}

// SeedFromFile merges every dictionary of the seed at path and returns how
// many languages it held.
func (c *Catalog) SeedFromFile(path string) (int, error) {
	seed, err := LoadSeed(path)
	if err != nil {
		return 0, err
	}
	for lang, dict := range seed {
		if _, err := c.Merge(models.TranslationUpdate{Language: lang, Translations: dict}); err != nil {
			return 0, fmt.Errorf("invalid translation seed language %q: %w", lang, err)
		}
	}
	return len(seed), nil
}
