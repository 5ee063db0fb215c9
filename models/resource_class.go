package models

// ResourceClass identifies a bookable service whose calendar is independently
// non-overlapping.
type ResourceClass string

const (
	ClassTrainingSwing    ResourceClass = "training-swing"
	ClassTrainingAdvanced ResourceClass = "training-advanced"
	ClassAdvisoryConsult  ResourceClass = "advisory-consult"
	ClassAdvisoryAccount  ResourceClass = "advisory-account"
)

// ClassConfig holds the per-class booking settings. Class-type services
// (RequiresBlockAlignment) are only offerable exactly where a recurring block
// of their class exists; advisory services are offerable on any free
// operating-hours window.
type ClassConfig struct {
	Class                  ResourceClass `mapstructure:"class" json:"class"`
	DisplayName            string        `mapstructure:"displayName" json:"displayName"`
	DurationMinutes        int           `mapstructure:"durationMinutes" json:"durationMinutes"`
	RequiresBlockAlignment bool          `mapstructure:"requiresBlockAlignment" json:"requiresBlockAlignment"`
	CodePrefix             string        `mapstructure:"codePrefix" json:"codePrefix"` // two letters, e.g. "TS"
	BasePrice              float64       `mapstructure:"basePrice" json:"basePrice"`
	Currency               string        `mapstructure:"currency" json:"currency"`
}

// ClassCatalog resolves per-class settings by resource class.
type ClassCatalog map[ResourceClass]ClassConfig

// NewClassCatalog builds a catalog from a configuration slice.
func NewClassCatalog(configs []ClassConfig) ClassCatalog {
	catalog := make(ClassCatalog, len(configs))
	for _, cfg := range configs {
		catalog[cfg.Class] = cfg
	}
	return catalog
}

// Get returns the settings for class, and whether the class is known.
func (c ClassCatalog) Get(class ResourceClass) (ClassConfig, bool) {
	cfg, ok := c[class]
	return cfg, ok
}
