package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/timelog/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	order := make([]string, 0, 3)
	cleanup.Register(&cleanup.Job{Name: "first", F: func() error {
		order = append(order, "first")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "failing", F: func() error {
		order = append(order, "failing")
		return errors.New("close error")
	}})
	cleanup.Register(&cleanup.Job{Name: "last", F: func() error {
		order = append(order, "last")
		return nil
	}})
	cleanup.CleanUp()
	assert.Equal(t, []string{"last", "failing", "first"}, order)

	t.Run("jobs run only once", func(t *testing.T) {
		cleanup.CleanUp()
		assert.Len(t, order, 3)
	})
}
