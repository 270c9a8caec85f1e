package responderService

import (
	"ResponderBot/internal/api/responder"
	responderRepository "ResponderBot/internal/api/responder/repository"
	"ResponderBot/internal/entity"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sender is the one-way outbound capability the engine emits replies
// through. Delivery is best-effort; the engine never waits on it.
type Sender interface {
	SendMessage(ctx context.Context, conversationID, message string) error
}

type IResponderService interface {
	ProcessMessage(msg entity.InboundMessage)
	FindMatchingIntent(doc *entity.ResponseDocument, text string) *IntentMatch
	Render(template string, localVars, globalVars map[string][]string) string
	TestMatch(text string) responder.TestMatchResponse
	SaveDocument(ctx context.Context, doc *entity.ResponseDocument) (responder.DocumentStats, error)
	LoadPersisted(ctx context.Context) *entity.ResponseDocument
	StoreDebug(ctx context.Context) responder.StoreDebugInfo
	Document() *entity.ResponseDocument
	History(conversationID string) []entity.ConversationEntry
}

type responderService struct {
	log       *logrus.Logger
	repo      responderRepository.Repository
	sender    Sender
	rand      RandSource
	threshold float64

	docMu   sync.RWMutex
	doc     *entity.ResponseDocument
	history *historyTable
}

func New(
	log *logrus.Logger,
	repo responderRepository.Repository,
	sender Sender,
	rand RandSource,
	threshold float64,
) IResponderService {
	s := &responderService{
		log:       log,
		repo:      repo,
		sender:    sender,
		rand:      rand,
		threshold: threshold,
		history:   newHistoryTable(),
	}

	s.doc = repo.Load()

	return s
}

// Document returns the current in-memory snapshot. Processing of one
// message takes a single snapshot up front and never re-reads it
// mid-computation, so a concurrent swap cannot produce a torn match.
func (s *responderService) Document() *entity.ResponseDocument {
	s.docMu.RLock()
	defer s.docMu.RUnlock()
	return s.doc
}

func (s *responderService) swapDocument(doc *entity.ResponseDocument) {
	s.docMu.Lock()
	defer s.docMu.Unlock()
	s.doc = doc
}

func (s *responderService) History(conversationID string) []entity.ConversationEntry {
	return s.history.Entries(conversationID)
}
