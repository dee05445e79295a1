package models

// RoundStateView is the synchronous read of a round's lifecycle exposed to
// the request-handling collaborator.
type RoundStateView struct {
	Round      GameRoundDB `json:"round"`
	State      string      `json:"state"`
	EntryCount int         `json:"entry_count"`
	VoteCount  int         `json:"vote_count"`
}
