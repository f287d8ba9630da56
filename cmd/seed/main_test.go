package main

import (
	"os"
	"path/filepath"
	"testing"

	"campshop/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadFixtures_BundledData(t *testing.T) {
	f, err := loadFixtures(filepath.Join("..", "..", "_data"))
	require.NoError(t, err)

	assert.Len(t, f.users, 4)
	assert.Len(t, f.bootcamps, 2)
	assert.Len(t, f.courses, 3)
	assert.Len(t, f.categories, 2)
	assert.Len(t, f.products, 2)
	assert.Len(t, f.reviews, 3)

	bootcamps := map[string]bool{}
	for _, b := range f.bootcamps {
		bootcamps[b.ID] = true
	}
	for _, c := range f.courses {
		assert.True(t, bootcamps[c.BootcampID], "course %s points at a missing bootcamp", c.Title)
	}
	for _, r := range f.reviews {
		assert.True(t, (r.BootcampID == nil) != (r.CategoryID == nil), "review %s must have exactly one parent", r.Title)
	}
}

func TestLoadFixtures_MissingFile(t *testing.T) {
	_, err := loadFixtures(t.TempDir())
	assert.Error(t, err)
}

func TestLoadFixtures_BadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{"), 0o644))

	_, err := loadFixtures(dir)
	assert.ErrorContains(t, err, "parse users.json")
}

func TestPrepare(t *testing.T) {
	f := &fixtures{
		users:      []models.User{{Email: "a@x.com", Password: "123456"}},
		bootcamps:  []models.Bootcamp{{Name: "Devworks Bootcamp"}},
		categories: []models.Category{{Name: "Developer Books", Photo: "custom.png"}},
		products:   []models.Product{{Name: "Mechanical Keyboard"}},
	}

	require.NoError(t, f.prepare())

	assert.Equal(t, "user", f.users[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(f.users[0].Password), []byte("123456")))
	assert.Equal(t, "devworks-bootcamp", f.bootcamps[0].Slug)
	assert.Equal(t, models.DefaultPhoto, f.bootcamps[0].Photo)
	assert.Equal(t, "developer-books", f.categories[0].Slug)
	assert.Equal(t, "custom.png", f.categories[0].Photo)
	assert.Equal(t, "mechanical-keyboard", f.products[0].Slug)
}
