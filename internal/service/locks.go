package service

import "sync"

// LockTable serializes operations against individual chats. Append,
// commit and restore on the same chat id are mutually exclusive;
// different chats never share a lock, so cross-chat traffic runs in
// parallel. Entries are tiny and chats are never deleted, so the table
// only grows with the number of distinct chats touched by a process.
type LockTable struct {
	locks sync.Map // chatID -> *sync.Mutex
}

func NewLockTable() *LockTable {
	return &LockTable{}
}

// Lock acquires the exclusive lock for a chat and returns the matching
// unlock function.
func (t *LockTable) Lock(chatID string) (unlock func()) {
	v, _ := t.locks.LoadOrStore(chatID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
