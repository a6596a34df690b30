package model

import (
	"strconv"
	"time"
)

type DirectThreadList []DirectThread

// DirectThread always stores its participants in canonical order: ParticipantA < ParticipantB.
type DirectThread struct {
	ID           int64     `db:"id" json:"id"`
	ParticipantA int64     `db:"participant_a" json:"user1"`
	ParticipantB int64     `db:"participant_b" json:"user2"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (t DirectThread) Group() string {
	return ThreadGroup(t.ID)
}

func (t DirectThread) HasParticipant(userID int64) bool {
	return t.ParticipantA == userID || t.ParticipantB == userID
}

func ThreadGroup(threadID int64) string {
	return "dm:" + strconv.FormatInt(threadID, 10)
}

// CanonicalPair orders two identities so that (x, y) and (y, x) address the same thread.
func CanonicalPair(a, b int64) (lo, hi int64) {
	if a <= b {
		return a, b
	}
	return b, a
}

type DirectThreadSummaryList []DirectThreadSummary

type DirectThreadSummary struct {
	DirectThread
	ParticipantAInfo User
	ParticipantBInfo User
	LastMessage      *MessagePreview
}
