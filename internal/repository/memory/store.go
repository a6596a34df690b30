// Package memory is an in-process implementation of the conversation repository.
// It keeps the same ordering and uniqueness guarantees as the Postgres repository
// and backs the development mode and end-to-end tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

const previewLength = 50

type txKey struct{}

// txState collects the row locks taken and the writes made inside one WithTx call.
type txState struct {
	unlocks []func()
	undo    []func()
}

type pair struct {
	a, b int64
}

type Store struct {
	mu sync.RWMutex

	nextRoomID          int64
	nextMessageID       int64
	nextThreadID        int64
	nextDirectMessageID int64

	rooms          map[int64]*model.Room
	roomsBySlug    map[string]int64
	roomsByName    map[string]int64
	messages       map[int64]model.MessageList
	users          map[int64]model.User
	threads        map[int64]*model.DirectThread
	threadsByPair  map[pair]int64
	directMessages map[int64]model.DirectMessageList

	rowLocks map[string]*sync.Mutex
}

func New() *Store {
	return &Store{
		rooms:          make(map[int64]*model.Room),
		roomsBySlug:    make(map[string]int64),
		roomsByName:    make(map[string]int64),
		messages:       make(map[int64]model.MessageList),
		users:          make(map[int64]model.User),
		threads:        make(map[int64]*model.DirectThread),
		threadsByPair:  make(map[pair]int64),
		directMessages: make(map[int64]model.DirectMessageList),
		rowLocks:       make(map[string]*sync.Mutex),
	}
}

// WithTx releases every row lock taken by cb when cb returns. Writes are visible to other
// readers immediately and are undone in reverse order when cb fails.
func (s *Store) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return cb(ctx)
	}

	state := &txState{}
	defer func() {
		for i := len(state.unlocks) - 1; i >= 0; i-- {
			state.unlocks[i]()
		}
	}()

	err := cb(context.WithValue(ctx, txKey{}, state))
	if err != nil {
		s.mu.Lock()
		for i := len(state.undo) - 1; i >= 0; i-- {
			state.undo[i]()
		}
		s.mu.Unlock()
	}

	return err
}

// onRollback registers fn to run under s.mu if the surrounding transaction fails.
// Outside a transaction writes are final.
func (s *Store) onRollback(ctx context.Context, fn func()) {
	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		state.undo = append(state.undo, fn)
	}
}

func (s *Store) lockRow(ctx context.Context, name string) {
	state, ok := ctx.Value(txKey{}).(*txState)
	if !ok {
		return
	}

	s.mu.Lock()
	l, exists := s.rowLocks[name]
	if !exists {
		l = &sync.Mutex{}
		s.rowLocks[name] = l
	}
	s.mu.Unlock()

	l.Lock()
	state.unlocks = append(state.unlocks, l.Unlock)
}

func (s *Store) InsertRoom(ctx context.Context, name string, slug *string) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roomsByName[name]; ok {
		return nil, model.ErrDuplicateName
	}
	if slug != nil {
		if _, ok := s.roomsBySlug[*slug]; ok {
			return nil, model.ErrDuplicateSlug
		}
	}

	s.nextRoomID++
	room := &model.Room{
		ID:        s.nextRoomID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if slug != nil {
		room.Slug = *slug
		s.roomsBySlug[*slug] = room.ID
	}

	s.rooms[room.ID] = room
	s.roomsByName[name] = room.ID
	s.onRollback(ctx, func() {
		if room.Slug != "" {
			delete(s.roomsBySlug, room.Slug)
		}
		delete(s.roomsByName, room.Name)
		delete(s.messages, room.ID)
		delete(s.rooms, room.ID)
	})

	cp := *room
	return &cp, nil
}

func (s *Store) SetRoomSlug(ctx context.Context, roomID int64, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return model.ErrNotFound
	}
	if owner, taken := s.roomsBySlug[slug]; taken && owner != roomID {
		return model.ErrDuplicateSlug
	}

	previous := room.Slug
	if previous != "" {
		delete(s.roomsBySlug, previous)
	}
	room.Slug = slug
	s.roomsBySlug[slug] = roomID
	s.onRollback(ctx, func() {
		delete(s.roomsBySlug, slug)
		room.Slug = previous
		if previous != "" {
			s.roomsBySlug[previous] = roomID
		}
	})

	return nil
}

func (s *Store) GetRoomBySlug(_ context.Context, slug string) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.roomLocked(s.roomsBySlug, slug)
}

func (s *Store) GetRoomByName(_ context.Context, name string) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.roomLocked(s.roomsByName, name)
}

func (s *Store) LockRoomBySlug(ctx context.Context, slug string) (*model.Room, error) {
	room, err := s.GetRoomBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.lockRow(ctx, model.RoomGroup(slug))
	return room, nil
}

func (s *Store) roomLocked(index map[string]int64, key string) (*model.Room, error) {
	id, ok := index[key]
	if !ok {
		return nil, model.ErrNotFound
	}

	cp := *s.rooms[id]
	return &cp, nil
}

func (s *Store) SearchRooms(_ context.Context, query string, limit uint64) (model.RoomSummaryList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	rooms := make(model.RoomSummaryList, 0, len(s.rooms))
	for _, room := range s.rooms {
		if needle != "" && !strings.Contains(strings.ToLower(room.Name), needle) {
			continue
		}

		summary := model.RoomSummary{Room: *room}
		history := s.messages[room.ID]
		summary.MessagesCount = int64(len(history))
		if len(history) > 0 {
			last := history[len(history)-1]
			summary.LastMessage = &model.MessagePreview{
				ID:        last.ID,
				Author:    last.AuthorName,
				Content:   truncate(last.Content),
				CreatedAt: last.CreatedAt,
			}
		}
		rooms = append(rooms, summary)
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].ID > rooms[j].ID
	})

	if uint64(len(rooms)) > limit {
		rooms = rooms[:limit]
	}

	return rooms, nil
}

func (s *Store) InsertRoomMessage(ctx context.Context, roomID int64, authorName, content string) (*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[roomID]; !ok {
		return nil, model.ErrNotFound
	}

	s.nextMessageID++
	message := model.Message{
		ID:         s.nextMessageID,
		RoomID:     roomID,
		AuthorName: authorName,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	s.messages[roomID] = append(s.messages[roomID], message)
	s.onRollback(ctx, func() {
		s.messages[roomID] = without(s.messages[roomID], func(m model.Message) bool { return m.ID == message.ID })
	})

	return &message, nil
}

func (s *Store) GetRoomMessagesAfter(_ context.Context, roomID, cursor int64, limit uint64) (model.MessageList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.messages[roomID]
	start := sort.Search(len(history), func(i int) bool { return history[i].ID > cursor })

	return copyWindow(history[start:], limit, false), nil
}

func (s *Store) GetRecentRoomMessages(_ context.Context, roomID int64, limit uint64) (model.MessageList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyWindow(s.messages[roomID], limit, true), nil
}

func (s *Store) GetUser(_ context.Context, userID int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, model.ErrNotFound
	}

	return &user, nil
}

func (s *Store) UpsertUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		stored = model.User{ID: user.ID, CreatedAt: time.Now()}
	}
	stored.Username = user.Username
	stored.DisplayName = user.DisplayName
	s.users[user.ID] = stored

	return nil
}

func (s *Store) InsertThread(ctx context.Context, participantA, participantB int64) (*model.DirectThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pair{a: participantA, b: participantB}
	if _, ok := s.threadsByPair[key]; ok {
		return nil, model.ErrDuplicateThread
	}

	s.nextThreadID++
	thread := &model.DirectThread{
		ID:           s.nextThreadID,
		ParticipantA: participantA,
		ParticipantB: participantB,
		CreatedAt:    time.Now(),
	}
	s.threads[thread.ID] = thread
	s.threadsByPair[key] = thread.ID
	s.onRollback(ctx, func() {
		delete(s.threadsByPair, key)
		delete(s.directMessages, thread.ID)
		delete(s.threads, thread.ID)
	})

	cp := *thread
	return &cp, nil
}

func (s *Store) GetThreadByPair(_ context.Context, participantA, participantB int64) (*model.DirectThread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.threadsByPair[pair{a: participantA, b: participantB}]
	if !ok {
		return nil, model.ErrNotFound
	}

	cp := *s.threads[id]
	return &cp, nil
}

func (s *Store) GetThreadByID(_ context.Context, threadID int64) (*model.DirectThread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, ok := s.threads[threadID]
	if !ok {
		return nil, model.ErrNotFound
	}

	cp := *thread
	return &cp, nil
}

func (s *Store) LockThread(ctx context.Context, threadID int64) (*model.DirectThread, error) {
	thread, err := s.GetThreadByID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	s.lockRow(ctx, model.ThreadGroup(threadID))
	return thread, nil
}

func (s *Store) GetUserThreads(_ context.Context, userID int64) (model.DirectThreadSummaryList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	threads := model.DirectThreadSummaryList{}
	for _, thread := range s.threads {
		if !thread.HasParticipant(userID) {
			continue
		}

		summary := model.DirectThreadSummary{
			DirectThread:     *thread,
			ParticipantAInfo: s.users[thread.ParticipantA],
			ParticipantBInfo: s.users[thread.ParticipantB],
		}
		history := s.directMessages[thread.ID]
		if len(history) > 0 {
			last := history[len(history)-1]
			summary.LastMessage = &model.MessagePreview{
				ID:        last.ID,
				Author:    s.users[last.AuthorID].Username,
				Content:   truncate(last.Content),
				CreatedAt: last.CreatedAt,
			}
		}
		threads = append(threads, summary)
	}

	sort.Slice(threads, func(i, j int) bool {
		return threads[i].ID > threads[j].ID
	})

	return threads, nil
}

func (s *Store) InsertThreadMessage(ctx context.Context, threadID, authorID int64, content string) (*model.DirectMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[threadID]; !ok {
		return nil, model.ErrNotFound
	}

	s.nextDirectMessageID++
	message := model.DirectMessage{
		ID:        s.nextDirectMessageID,
		ThreadID:  threadID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	s.directMessages[threadID] = append(s.directMessages[threadID], message)
	s.onRollback(ctx, func() {
		s.directMessages[threadID] = without(s.directMessages[threadID], func(m model.DirectMessage) bool { return m.ID == message.ID })
	})

	return &message, nil
}

func (s *Store) GetThreadMessagesAfter(_ context.Context, threadID, cursor int64, limit uint64) (model.DirectMessageList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.directMessages[threadID]
	start := sort.Search(len(history), func(i int) bool { return history[i].ID > cursor })

	return s.withAuthors(copyWindow(history[start:], limit, false)), nil
}

func (s *Store) GetRecentThreadMessages(_ context.Context, threadID int64, limit uint64) (model.DirectMessageList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.withAuthors(copyWindow(s.directMessages[threadID], limit, true)), nil
}

func (s *Store) withAuthors(messages model.DirectMessageList) model.DirectMessageList {
	for i := range messages {
		author := s.users[messages[i].AuthorID]
		messages[i].AuthorUsername = author.Username
		messages[i].AuthorName = author.Name()
	}
	return messages
}

// copyWindow copies at most limit items, taken from the head or, when tail is set, from the end.
func copyWindow[T any](items []T, limit uint64, tail bool) []T {
	if uint64(len(items)) > limit {
		if tail {
			items = items[uint64(len(items))-limit:]
		} else {
			items = items[:limit]
		}
	}

	out := make([]T, len(items))
	copy(out, items)
	return out
}

func without[T any](items []T, drop func(T) bool) []T {
	kept := items[:0]
	for _, item := range items {
		if !drop(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

func truncate(content string) string {
	runes := []rune(content)
	if len(runes) > previewLength {
		return string(runes[:previewLength])
	}
	return content
}
