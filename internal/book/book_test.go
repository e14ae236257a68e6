package book

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"album-backend/internal/models"
)

func somePhotos(n int) []models.Photo {
	photos := make([]models.Photo, n)
	for i := range photos {
		photos[i] = models.Photo{ID: i + 1, Filename: fmt.Sprintf("p%d.jpg", i+1)}
	}
	return photos
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		photos int
		pages  int
	}{
		{0, 1},
		{1, 1},
		{3, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d photos", tt.photos), func(t *testing.T) {
			s := New()
			s.SetPhotos(somePhotos(tt.photos), false)
			assert.Equal(t, tt.pages, s.PageCount())
		})
	}
}

func TestPagesPartition(t *testing.T) {
	s := New()
	s.SetPhotos(somePhotos(9), false)

	pages := s.Pages()
	assert.Len(t, pages, 3)
	assert.Len(t, pages[0], 4)
	assert.Len(t, pages[1], 4)
	assert.Len(t, pages[2], 1)
	assert.Equal(t, 1, pages[0][0].ID)
	assert.Equal(t, 9, pages[2][0].ID)
}

func TestEmptyAlbumRendersOnePage(t *testing.T) {
	s := New()
	v := s.Render()

	assert.True(t, v.Empty)
	assert.Empty(t, v.Pages)
	assert.Equal(t, "Страница 1 / 1", v.Indicator)
	assert.True(t, v.PrevDisabled)
	assert.True(t, v.NextDisabled)
}

func TestNavigationClampsAtBoundaries(t *testing.T) {
	s := New()
	s.SetPhotos(somePhotos(10), false) // 3 pages

	s.Prev()
	assert.Equal(t, 0, s.Page(), "prev on the first page is a no-op")

	s.Next()
	s.Next()
	assert.Equal(t, 2, s.Page())

	s.Next()
	assert.Equal(t, 2, s.Page(), "next on the last page is a no-op")

	s.Prev()
	assert.Equal(t, 1, s.Page())
}

func TestSetPhotosJumpsToLastPage(t *testing.T) {
	s := New()
	s.SetPhotos(somePhotos(4), false)
	assert.Equal(t, 0, s.Page())

	s.SetPhotos(somePhotos(9), true)
	assert.Equal(t, 2, s.Page())
}

func TestSetPhotosClampsStaleIndex(t *testing.T) {
	s := New()
	s.SetPhotos(somePhotos(12), false)
	s.Next()
	s.Next()
	assert.Equal(t, 2, s.Page())

	// Shrinking list pulls the index back onto a real page.
	s.SetPhotos(somePhotos(4), false)
	assert.Equal(t, 0, s.Page())
}

func TestClearResetsState(t *testing.T) {
	s := New()
	s.SetPhotos(somePhotos(9), true)
	assert.Equal(t, 2, s.Page())

	s.Clear()
	assert.Equal(t, 0, s.Page())
	assert.Equal(t, 1, s.PageCount())
	assert.True(t, s.Render().Empty)
}

func TestRenderFlipsPagesBeforeCurrent(t *testing.T) {
	s := New()
	s.SetPhotos(somePhotos(12), false) // 3 pages
	s.Next()
	s.Next()

	v := s.Render()
	assert.Equal(t, "Страница 3 / 3", v.Indicator)
	assert.False(t, v.PrevDisabled)
	assert.True(t, v.NextDisabled)

	flipped := []bool{}
	for _, p := range v.Pages {
		flipped = append(flipped, p.Flipped)
	}
	assert.Equal(t, []bool{true, true, false}, flipped)

	s.Prev()
	v = s.Render()
	assert.Equal(t, []bool{true, false, false}, []bool{v.Pages[0].Flipped, v.Pages[1].Flipped, v.Pages[2].Flipped})
}
