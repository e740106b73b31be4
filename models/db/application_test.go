package dbmodels

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"job-tracker-backend/models"
)

func TestAppendActivity(t *testing.T) {
	event := ActivityEvent{
		Event: models.ActivityEventStatusChange,
		From:  "Applied",
		To:    "Offer",
		Date:  time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}

	t.Run(`добавление к пустому журналу`, func(t *testing.T) {
		raw, err := AppendActivity("", event)
		require.NoError(t, err)
		require.JSONEq(t, `[{"event":"Status Change","from":"Applied","to":"Offer","date":"2026-08-28T12:00:00Z"}]`, raw)
	})

	t.Run(`ранее записанные события сохраняются`, func(t *testing.T) {
		seeded, err := NewActivityLog(ActivityEvent{
			Event: models.ActivityEventCreated,
			From:  "",
			To:    "Applied",
			Date:  time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		raw, err := AppendActivity(seeded, event)
		require.NoError(t, err)

		events := []ActivityEvent{}
		require.NoError(t, json.Unmarshal([]byte(raw), &events))
		require.Len(t, events, 2)
		require.Equal(t, models.ActivityEventCreated, events[0].Event)
		require.Equal(t, models.ActivityEventStatusChange, events[1].Event)
	})

	t.Run(`нечитаемый журнал дает ошибку`, func(t *testing.T) {
		_, err := AppendActivity("[broken", event)
		require.Error(t, err)
	})
}
