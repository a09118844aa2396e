package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

// MemoryStore keeps houses and notes in process memory. It backs the
// memory store driver and the service tests. Values handed out are
// copies, so callers never alias stored state.
type MemoryStore struct {
	mu          sync.RWMutex
	houses      map[int64]*models.House
	notes       map[int64]*models.Note
	nextHouseID int64
	nextNoteID  int64
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		houses: make(map[int64]*models.House),
		notes:  make(map[int64]*models.Note),
		now:    time.Now,
	}
}

func (s *MemoryStore) Houses() HouseRepository { return &memoryHouseRepo{s: s} }
func (s *MemoryStore) Notes() NoteRepository   { return &memoryNoteRepo{s: s} }

func cloneHouse(h *models.House) *models.House {
	c := *h
	c.Notes = nil
	return &c
}

func cloneNote(n *models.Note) *models.Note {
	c := *n
	return &c
}

// notesFor returns copies of the notes of houseID, newest first. Caller holds mu.
func (s *MemoryStore) notesFor(houseID int64) []*models.Note {
	out := []*models.Note{}
	for _, n := range s.notes {
		if n.HouseID == houseID {
			out = append(out, cloneNote(n))
		}
	}
	sortNotesNewestFirst(out)
	return out
}

func sortNotesNewestFirst(notes []*models.Note) {
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		}
		return notes[i].ID > notes[j].ID
	})
}

/* ------------------------------------------------------------------
   Houses
------------------------------------------------------------------ */

type memoryHouseRepo struct {
	s *MemoryStore
}

func (r *memoryHouseRepo) Create(_ context.Context, h *models.House) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if h.Status == "" {
		h.Status = models.HouseStatusClean
	}
	if h.CheckState == "" {
		h.CheckState = models.CheckStateNone
	}
	if h.Number > 0 {
		for _, cur := range r.s.houses {
			if cur.Type == h.Type && cur.Number == h.Number {
				return ErrDuplicateHouse
			}
		}
	}
	r.s.nextHouseID++
	now := r.s.now()
	h.ID = r.s.nextHouseID
	h.CreatedAt = now
	h.UpdatedAt = now
	h.RowVersion = 1
	r.s.houses[h.ID] = cloneHouse(h)
	return nil
}

func (r *memoryHouseRepo) CreateMany(ctx context.Context, houses []*models.House) error {
	for _, h := range houses {
		if err := r.Create(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

func (r *memoryHouseRepo) GetByID(_ context.Context, id int64) (*models.House, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	h, ok := r.s.houses[id]
	if !ok {
		return nil, nil
	}
	return cloneHouse(h), nil
}

func (r *memoryHouseRepo) GetWithNotes(_ context.Context, id int64) (*models.House, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	h, ok := r.s.houses[id]
	if !ok {
		return nil, nil
	}
	out := cloneHouse(h)
	out.Notes = r.s.notesFor(id)
	return out, nil
}

func (r *memoryHouseRepo) ListWithNotes(_ context.Context) ([]*models.House, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.House, 0, len(r.s.houses))
	for id, h := range r.s.houses {
		c := cloneHouse(h)
		c.Notes = r.s.notesFor(id)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryHouseRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.houses), nil
}

func (r *memoryHouseRepo) UpdateIfVersion(_ context.Context, h *models.House, expected int64) (pgconn.CommandTag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.houses[h.ID]
	if !ok || cur.RowVersion != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cur.Status = h.Status
	cur.CheckState = h.CheckState
	cur.UpdatedAt = r.s.now()
	cur.RowVersion++
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (r *memoryHouseRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.House) error) error {
	return WithRetry(ctx, constants.HouseUpdateMaxRetries, id, r.GetByID, r.UpdateIfVersion, mutate)
}

func (r *memoryHouseRepo) ResetCheckStates(_ context.Context, state models.CheckStateType) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var changed int64
	now := r.s.now()
	for _, h := range r.s.houses {
		if h.CheckState == state {
			continue
		}
		h.CheckState = state
		h.UpdatedAt = now
		h.RowVersion++
		changed++
	}
	return changed, nil
}

func (r *memoryHouseRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.houses[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.houses, id)
	for nid, n := range r.s.notes {
		if n.HouseID == id {
			delete(r.s.notes, nid)
		}
	}
	return nil
}

/* ------------------------------------------------------------------
   Notes
------------------------------------------------------------------ */

type memoryNoteRepo struct {
	s *MemoryStore
}

func (r *memoryNoteRepo) Create(_ context.Context, n *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.houses[n.HouseID]; !ok {
		return ErrParentNotFound
	}
	if n.CreatedBy == "" {
		n.CreatedBy = models.DefaultNoteAuthor
	}
	if n.Area == "" {
		n.Area = models.NoteAreaOther
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.s.now()
	}
	r.s.nextNoteID++
	n.ID = r.s.nextNoteID
	r.s.notes[n.ID] = cloneNote(n)
	return nil
}

func (r *memoryNoteRepo) GetByID(_ context.Context, id int64) (*models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n, ok := r.s.notes[id]
	if !ok {
		return nil, nil
	}
	return cloneNote(n), nil
}

func (r *memoryNoteRepo) ListByHouseID(_ context.Context, houseID int64) ([]*models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.notesFor(houseID), nil
}

func (r *memoryNoteRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.notes[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.notes, id)
	return nil
}

func (r *memoryNoteRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.notes), nil
}
