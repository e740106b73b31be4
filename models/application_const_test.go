package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	t.Run(`известные статусы не меняются`, func(t *testing.T) {
		for _, status := range []ApplicationStatus{
			StatusApplied, StatusPhoneScreen, StatusTechnical, StatusOffer, StatusRejected,
		} {
			require.Equal(t, status, NormalizeStatus(status))
		}
	})

	t.Run(`неизвестный статус попадает в колонку Applied`, func(t *testing.T) {
		require.Equal(t, StatusApplied, NormalizeStatus("Take-Home Assignment"))
		require.Equal(t, StatusApplied, NormalizeStatus(""))
	})
}
