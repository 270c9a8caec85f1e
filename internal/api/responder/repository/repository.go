package responderRepository

import (
	"ResponderBot/internal/entity"
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrDocumentNotFound signals that the backing document does not exist
// yet. Callers treat it as "start from the empty default".
var ErrDocumentNotFound = errors.New("response document not found")

// DocumentBackend is the byte-level persistence contract for the
// response document. Implementations must make Write atomic enough that
// a concurrent Read never observes a partially written document.
type DocumentBackend interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Exists() bool
	Location() string
}

type Repository interface {
	Load() *entity.ResponseDocument
	Save(doc *entity.ResponseDocument) error
	Reload() *entity.ResponseDocument
	Backend() DocumentBackend
}

type responderRepository struct {
	backend DocumentBackend
	log     *logrus.Logger
}

func New(backend DocumentBackend, log *logrus.Logger) Repository {
	return &responderRepository{
		backend: backend,
		log:     log,
	}
}

func (r *responderRepository) Backend() DocumentBackend {
	return r.backend
}
