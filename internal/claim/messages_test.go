package claim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/giftwell/internal/models"
)

func TestResolveMessage(t *testing.T) {
	t.Run("single-gift boost-registration uses the surprise template", func(t *testing.T) {
		msg := ResolveMessage(models.MotionBoostRegistration, true, "Sam")

		assert.Equal(t, "Hey Sam, a surprise is waiting for you!", msg.Title)
		assert.Contains(t, msg.Body, "confirm where")
	})

	t.Run("multi-gift boost-registration offers the chooser", func(t *testing.T) {
		msg := ResolveMessage(models.MotionBoostRegistration, false, "Sam")

		assert.Equal(t, "Hey Sam, pick a gift on us!", msg.Title)
	})

	t.Run("missing first name falls back to there", func(t *testing.T) {
		msg := ResolveMessage(models.MotionBoostRegistration, true, "")
		assert.Equal(t, "Hey there, a surprise is waiting for you!", msg.Title)

		msg = ResolveMessage(models.MotionBoostRegistration, true, "   ")
		assert.Equal(t, "Hey there, a surprise is waiting for you!", msg.Title)
	})

	t.Run("unknown motion falls back to the generic template", func(t *testing.T) {
		msg := ResolveMessage("made-up-motion", false, "Sam")

		assert.Equal(t, "A gift for you, Sam!", msg.Title)
		assert.NotEmpty(t, msg.Body)
	})

	t.Run("no placeholder survives interpolation", func(t *testing.T) {
		for _, motion := range []string{
			models.MotionBoostRegistration,
			models.MotionBookMeeting,
			models.MotionDriveAttendance,
			models.MotionSayThanks,
			"unknown",
		} {
			for _, single := range []bool{true, false} {
				msg := ResolveMessage(motion, single, "Ada")
				assert.False(t, strings.Contains(msg.Title, "{{"), "title for %s leaked a placeholder", motion)
				assert.False(t, strings.Contains(msg.Body, "{{"), "body for %s leaked a placeholder", motion)
			}
		}
	})
}
