package responderService

import (
	"ResponderBot/internal/api/responder"
	"ResponderBot/internal/entity"
	contextPkg "ResponderBot/pkg/context"
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// SaveDocument persists the document and, on success, swaps it in as the
// live matching snapshot. On write failure the previous in-memory
// document stays active.
func (s *responderService) SaveDocument(ctx context.Context, doc *entity.ResponseDocument) (responder.DocumentStats, error) {
	requestID := contextPkg.GetRequestID(ctx)

	doc.EnsureDefaults()

	if err := s.repo.Save(doc); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save response document")
		return responder.DocumentStats{}, responder.ErrStoreWrite
	}

	s.swapDocument(doc)

	stats := responder.DocumentStats{
		GlobalVars: len(doc.GlobalVars),
		Intents:    len(doc.Intents),
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"intents":     stats.Intents,
		"global_vars": stats.GlobalVars,
	}).Info("Response document saved and swapped in")

	return stats, nil
}

// LoadPersisted re-reads the backing store without touching the live
// snapshot; the admin panel always sees what is actually persisted.
func (s *responderService) LoadPersisted(ctx context.Context) *entity.ResponseDocument {
	requestID := contextPkg.GetRequestID(ctx)

	doc := s.repo.Load()

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"intents":     len(doc.Intents),
		"global_vars": len(doc.GlobalVars),
	}).Debug("Persisted response document read")

	return doc
}

// StoreDebug reports the health of the backing store the way the admin
// panel expects it: existence, size, location and a content preview.
func (s *responderService) StoreDebug(ctx context.Context) responder.StoreDebugInfo {
	backend := s.repo.Backend()

	info := responder.StoreDebugInfo{
		Exists:         backend.Exists(),
		SizeKB:         "0.00",
		Path:           backend.Location(),
		ContentPreview: "{}",
	}

	if !info.Exists {
		return info
	}

	data, err := backend.Read()
	if err != nil {
		info.ContentPreview = "READ ERROR: " + err.Error()
		return info
	}

	info.SizeKB = fmt.Sprintf("%.2f", float64(len(data))/1024)

	var probe map[string]interface{}
	if err := jsoniter.Unmarshal(data, &probe); err != nil {
		info.ContentPreview = "INVALID JSON: " + err.Error()
		return info
	}

	preview := string(data)
	if len(preview) > 500 {
		preview = preview[:500]
	}
	info.ContentPreview = preview + "..."

	return info
}
