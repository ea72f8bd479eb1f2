package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"api/cache"
	"api/github"
	"api/models"
)

const rosterPath = "members.json"

// LoadRoster fetches and decodes the roster document from the content store
func LoadRoster(ctx context.Context, client *github.Client) (models.Roster, error) {
	if raw, ok := client.Cache().Get(cache.KeyMembers); ok {
		var roster models.Roster
		if err := json.Unmarshal(raw, &roster); err == nil {
			return roster, nil
		}
	}

	content, err := client.FileContent(ctx, rosterPath)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	var roster models.Roster
	if err := json.Unmarshal([]byte(content), &roster); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}

	if raw, err := json.Marshal(roster); err == nil {
		client.Cache().Set(cache.KeyMembers, raw, cache.DefaultTTL)
	}
	return roster, nil
}

// ResolveMember maps an authenticated external handle to a member id by
// case-insensitive exact match against roster handles. Iteration is over
// sorted member ids, so a duplicate handle resolves to the same entry on
// every call.
func ResolveMember(roster models.Roster, externalHandle string) (string, bool) {
	handle := strings.ToLower(externalHandle)
	for _, member := range roster.Members() {
		if strings.ToLower(member.Github) == handle {
			return member.ID, true
		}
	}
	return "", false
}
