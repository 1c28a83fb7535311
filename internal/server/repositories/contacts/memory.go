package contacts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

type book struct {
	lastID   int64
	contacts []models.Contact
}

// MemoryRepository keeps contacts in process memory. Contents are lost on
// restart.
type MemoryRepository struct {
	mu    sync.Mutex
	books map[string]*book
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{books: make(map[string]*book), now: time.Now}
}

func (r *MemoryRepository) book(ownerID string) *book {
	b, ok := r.books[ownerID]
	if !ok {
		b = &book{}
		r.books[ownerID] = b
	}
	return b
}

func (r *MemoryRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.book(contact.OwnerID)
	b.lastID++

	c := *contact
	c.ID = b.lastID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now()
	}
	b.contacts = append(b.contacts, c)

	return &c, nil
}

func (r *MemoryRepository) List(ctx context.Context, ownerID string) ([]models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[ownerID]
	if !ok {
		return []models.Contact{}, nil
	}
	out := make([]models.Contact, len(b.contacts))
	copy(out, b.contacts)
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, ownerID string, id int64) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	c := r.books[ownerID].contacts[i]
	return &c, nil
}

func (r *MemoryRepository) Update(ctx context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(contact.OwnerID, contact.ID)
	if i < 0 {
		return common.ErrorNotFound
	}
	stored := &r.books[contact.OwnerID].contacts[i]
	stored.Name = contact.Name
	stored.Phone = contact.Phone
	stored.Relationship = contact.Relationship
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return common.ErrorNotFound
	}
	b := r.books[ownerID]
	b.contacts = append(b.contacts[:i], b.contacts[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (r *MemoryRepository) indexOf(ownerID string, id int64) int {
	b, ok := r.books[ownerID]
	if !ok {
		return -1
	}
	for i, c := range b.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}
