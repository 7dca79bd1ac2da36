package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostToggleLike(t *testing.T) {
	p := &Post{}

	assert.True(t, p.ToggleLike("u1"))
	assert.True(t, p.ToggleLike("u2"))
	assert.Equal(t, 2, p.LikeCount)

	assert.False(t, p.ToggleLike("u1"))
	assert.Equal(t, []string{"u2"}, p.LikedBy)
	assert.Equal(t, 1, p.LikeCount)
}

func TestPostToggleLikeKeepsCountInSync(t *testing.T) {
	users := []string{"a", "b", "c", "d"}
	p := &Post{LikeCount: 7} // drifted count is repaired on the first toggle
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		p.ToggleLike(users[r.Intn(len(users))])
		assert.Equal(t, len(p.LikedBy), p.LikeCount)
		assert.GreaterOrEqual(t, p.LikeCount, 0)

		seen := map[string]bool{}
		for _, id := range p.LikedBy {
			assert.False(t, seen[id], "duplicate liker %s", id)
			seen[id] = true
		}
	}
}

func TestPostSyncImageURL(t *testing.T) {
	p := &Post{Images: []string{"m1", "m2"}}
	p.SyncImageURL()
	assert.Equal(t, "/v1/media/m1", p.ImageURL)

	p.Images = nil
	p.SyncImageURL()
	assert.Empty(t, p.ImageURL)
}
