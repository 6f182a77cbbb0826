package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ethan7628/HTTP-Methods/internal/model"
	"github.com/Ethan7628/HTTP-Methods/internal/store"
)

func TestCollectionList(t *testing.T) {
	c := store.NewCollection(store.SeedUsers()...)

	got := c.List()
	require.Len(t, got, 2)
	assert.Equal(t, "John Doe", got[0].Name)
	assert.Equal(t, "Jane Smith", got[1].Name)

	// The returned slice is a copy, mutating it must not touch the store.
	got[0].Name = "Mallory"
	fresh, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "John Doe", fresh.Name)
}

func TestCollectionGet(t *testing.T) {
	c := store.NewCollection(store.SeedUsers()...)

	u, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Jane Smith", u.Name)

	_, ok = c.Get(99)
	assert.False(t, ok)

	_, ok = c.Get(0)
	assert.False(t, ok)
}

func TestCollectionInsert(t *testing.T) {
	c := store.NewCollection(store.SeedUsers()...)

	u := c.Insert(model.User{Name: "Sam Lee", Email: "sam@example.com"})
	assert.Equal(t, 3, u.ID)
	assert.Equal(t, 3, c.Len())

	// Client-supplied ids are ignored in favor of the assigned one.
	u = c.Insert(model.User{ID: 42, Name: "Ada", Email: "ada@example.com"})
	assert.Equal(t, 4, u.ID)
}

func TestCollectionInsertReusesFreedID(t *testing.T) {
	c := store.NewCollection(store.SeedUsers()...)

	u := c.Insert(model.User{Name: "Sam Lee", Email: "sam@example.com"})
	require.Equal(t, 3, u.ID)

	_, ok := c.Remove(3)
	require.True(t, ok)

	// The maximum dropped back to 2, so id 3 is handed out again.
	u = c.Insert(model.User{Name: "Ada Lovelace", Email: "ada@example.com"})
	assert.Equal(t, 3, u.ID)
}

func TestCollectionInsertIntoEmpty(t *testing.T) {
	c := store.NewCollection[model.User]()

	u := c.Insert(model.User{Name: "Sam Lee", Email: "sam@example.com"})
	assert.Equal(t, 1, u.ID)
}

func TestCollectionReplace(t *testing.T) {
	c := store.NewCollection(store.SeedUsers()...)

	u, ok := c.Replace(1, model.User{ID: 77, Name: "Johnny Doe", Email: "johnny@example.com"})
	require.True(t, ok)
	assert.Equal(t, 1, u.ID, "replace keeps the stored id")

	got := c.List()
	require.Len(t, got, 2)
	assert.Equal(t, "Johnny Doe", got[0].Name, "replace keeps the slice position")

	_, ok = c.Replace(99, model.User{Name: "Nobody", Email: "no@example.com"})
	assert.False(t, ok)
}

func TestCollectionUpdate(t *testing.T) {
	c := store.NewCollection(store.SeedUsers()...)

	u, ok := c.Update(2, func(u model.User) model.User {
		u.Name = "Jane Doe"

		return u
	})
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, "jane@example.com", u.Email, "untouched fields survive")

	// A merge function cannot smuggle in a different id.
	u, ok = c.Update(2, func(u model.User) model.User {
		u.ID = 99

		return u
	})
	require.True(t, ok)
	assert.Equal(t, 2, u.ID)

	_, ok = c.Update(99, func(u model.User) model.User { return u })
	assert.False(t, ok)
}

func TestCollectionRemove(t *testing.T) {
	c := store.NewCollection(store.SeedPosts()...)
	c.Insert(model.Post{Title: "Third Post", Body: "This is the third post", UserID: 1})

	p, ok := c.Remove(2)
	require.True(t, ok)
	assert.Equal(t, "Second Post", p.Title)

	got := c.List()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID, "remove preserves the order of the rest")
	assert.Equal(t, 3, got[1].ID)

	_, ok = c.Remove(2)
	assert.False(t, ok)
}

func TestCollectionConcurrentAccess(t *testing.T) {
	c := store.NewCollection(store.SeedUsers()...)

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			c.Insert(model.User{Name: "Sam Lee", Email: "sam@example.com"})
			c.List()
			c.Get(1)
			c.Update(1, func(u model.User) model.User { return u })
			c.Len()
		}()
	}

	wg.Wait()

	assert.Equal(t, 18, c.Len())
}
