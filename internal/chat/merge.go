package chat

import (
	"TrioChat/entity"
)

// mergeMessages builds the next thread view from a freshly fetched server
// list and the current local list. The server list wins, with two
// exceptions:
//
//   - local optimistic entries (sending or failed) whose temp id the server
//     has not echoed back yet are re-appended after the server list, so an
//     in-flight send never vanishes because a poll response raced it;
//   - a message already read locally stays read even when the server copy
//     lags behind (a poll racing the read PATCH must not revert it).
//
// Server ordering is preserved as-is, display order is append-only.
func mergeMessages(server, local []entity.Message) []entity.Message {
	readIDs := make(map[string]struct{})
	for _, m := range local {
		if m.ID != "" && m.Status == entity.StatusRead {
			readIDs[m.ID] = struct{}{}
		}
	}

	confirmedTemp := make(map[string]struct{})
	for _, m := range server {
		if m.TempID != "" {
			confirmedTemp[m.TempID] = struct{}{}
		}
	}

	merged := make([]entity.Message, 0, len(server))
	for _, m := range server {
		if _, ok := readIDs[m.ID]; ok {
			m.Status = entity.StatusRead
		}
		merged = append(merged, m)
	}

	for _, m := range local {
		if !m.Pending() {
			continue
		}
		if _, ok := confirmedTemp[m.TempID]; ok {
			continue
		}
		merged = append(merged, m)
	}

	return merged
}
