package hardware

import (
	"fmt"
	"maps"
)

// Classifier maps raw hardware identifiers to models.
// A Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	table map[string]Model
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithIdentifiers adds identifier rows on top of the default table.
// Later rows override earlier ones for the same identifier.
// Panics on an empty identifier or an undeclared model so that a broken
// table fails at startup instead of misclassifying devices.
func WithIdentifiers(rows map[string]Model) ClassifierOption {
	return func(c *Classifier) {
		for id, m := range rows {
			if id == "" {
				panic(ErrEmptyIdentifier)
			}
			if !m.Valid() {
				panic(fmt.Errorf("%w: identifier %q maps to %d", ErrUnknownModel, id, m))
			}
			c.table[id] = m
		}
	}
}

// NewClassifier returns a classifier seeded with the default identifier table.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{table: maps.Clone(identifiers)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = NewClassifier()

// Lookup returns the model for rawID from the table alone.
func (c *Classifier) Lookup(rawID string) (Model, bool) {
	m, ok := c.table[rawID]
	return m, ok
}

// Identify classifies the device. The simulator signal takes precedence over
// the identifier; identifiers missing from the table resolve to Unknown.
func (c *Classifier) Identify(rawID string, simulator bool) Model {
	if simulator {
		return Simulator
	}
	if m, ok := c.table[rawID]; ok {
		return m
	}
	return Unknown
}

// New builds the hardware facts for rawID.
func (c *Classifier) New(rawID string, simulator bool) Hardware {
	model := c.Identify(rawID, simulator)
	return Hardware{
		ModelID: rawID,
		Model:   model,
		Flags:   CategoryFlags(model),
	}
}

// Lookup returns the model for rawID from the default table.
func Lookup(rawID string) (Model, bool) { return defaultClassifier.Lookup(rawID) }

// Identify classifies rawID with the default table.
func Identify(rawID string, simulator bool) Model {
	return defaultClassifier.Identify(rawID, simulator)
}

// New builds the hardware facts for rawID with the default table.
func New(rawID string, simulator bool) Hardware {
	return defaultClassifier.New(rawID, simulator)
}
