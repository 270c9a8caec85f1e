package responderRepository

import (
	"ResponderBot/internal/entity"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Load reads the backing document. A missing or malformed document is a
// recoverable condition: it yields the empty default, never an error.
func (r *responderRepository) Load() *entity.ResponseDocument {
	data, err := r.backend.Read()
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			r.log.WithFields(logrus.Fields{
				"location": r.backend.Location(),
			}).Info("Response document not found, starting empty")
		} else {
			r.log.WithFields(logrus.Fields{
				"location": r.backend.Location(),
				"error":    err.Error(),
			}).Error("Failed to read response document, starting empty")
		}
		return entity.NewResponseDocument()
	}

	doc := entity.NewResponseDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		r.log.WithFields(logrus.Fields{
			"location": r.backend.Location(),
			"error":    err.Error(),
		}).Error("Response document is malformed, starting empty")
		return entity.NewResponseDocument()
	}

	doc.EnsureDefaults()

	r.log.WithFields(logrus.Fields{
		"intents":     len(doc.Intents),
		"global_vars": len(doc.GlobalVars),
	}).Info("Response document loaded")

	return doc
}

// Save persists the document. Nil maps are normalized before writing so
// a later Load always round-trips to the same structure.
func (r *responderRepository) Save(doc *entity.ResponseDocument) error {
	doc.EnsureDefaults()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response document: %w", err)
	}

	if err := r.backend.Write(data); err != nil {
		r.log.WithFields(logrus.Fields{
			"location": r.backend.Location(),
			"error":    err.Error(),
		}).Error("Failed to write response document")
		return fmt.Errorf("failed to write response document: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"location":    r.backend.Location(),
		"intents":     len(doc.Intents),
		"global_vars": len(doc.GlobalVars),
	}).Info("Response document saved")

	return nil
}

// Reload discards nothing itself; it just re-reads the backend and hands
// the fresh snapshot to the caller to swap in.
func (r *responderRepository) Reload() *entity.ResponseDocument {
	return r.Load()
}
