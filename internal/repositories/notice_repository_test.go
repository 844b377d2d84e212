package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNoticeUpdates(t *testing.T) {
	t.Run("only updatable columns pass", func(t *testing.T) {
		updates := BuildNoticeUpdates(map[string]interface{}{
			"title":          "Water outage",
			"issue_date":     "2024-06-01",
			"is_notify_sent": 1,
		})
		assert.Equal(t, map[string]interface{}{
			"title":          "Water outage",
			"issue_date":     "2024-06-01",
			"is_notify_sent": 1,
		}, updates)
	})

	t.Run("owner column never enters the update set", func(t *testing.T) {
		updates := BuildNoticeUpdates(map[string]interface{}{
			"user_id": "attacker",
			"id":      "other",
			"title":   "ok",
		})
		assert.Equal(t, map[string]interface{}{"title": "ok"}, updates)
	})

	t.Run("unknown keys fall away", func(t *testing.T) {
		updates := BuildNoticeUpdates(map[string]interface{}{
			"not_a_column": "x",
			"folder_id":    "f-1",
		})
		assert.Equal(t, map[string]interface{}{"folder_id": "f-1"}, updates)
	})

	t.Run("nil values are skipped", func(t *testing.T) {
		updates := BuildNoticeUpdates(map[string]interface{}{
			"title": nil,
		})
		assert.Empty(t, updates)
	})

	t.Run("empty payload yields empty set", func(t *testing.T) {
		assert.Empty(t, BuildNoticeUpdates(map[string]interface{}{}))
	})
}
