// Package book models the album flip-book: an ordered photo list partitioned
// into fixed-size pages, a current page index, and a view derived purely from
// that state. The browser script mirrors the same transitions.
package book

import (
	"fmt"

	"album-backend/internal/models"
)

// PhotosPerPage is the number of photos on one book leaf.
const PhotosPerPage = 4

// State is the album UI state. Handlers mutate it through the intent
// methods; Render never does.
type State struct {
	photos  []models.Photo
	current int
}

func New() *State {
	return &State{}
}

// SetPhotos replaces the photo list. With jumpToLast the view moves to the
// last page so a fresh upload is visible immediately.
func (s *State) SetPhotos(photos []models.Photo, jumpToLast bool) {
	s.photos = photos
	if jumpToLast {
		s.current = s.PageCount() - 1
	}
	s.clamp()
}

// Clear resets to an empty album on page 0.
func (s *State) Clear() {
	s.photos = nil
	s.current = 0
}

// Prev moves one page back. A no-op on the first page.
func (s *State) Prev() {
	s.current--
	s.clamp()
}

// Next moves one page forward. A no-op on the last page.
func (s *State) Next() {
	s.current++
	s.clamp()
}

// Page returns the current page index.
func (s *State) Page() int {
	return s.current
}

// PageCount is at least 1: an empty album still shows one (empty) page.
func (s *State) PageCount() int {
	if len(s.photos) == 0 {
		return 1
	}
	return (len(s.photos) + PhotosPerPage - 1) / PhotosPerPage
}

// Pages partitions the photo list into leaves of PhotosPerPage; the last
// leaf may be shorter. An empty album has no leaves.
func (s *State) Pages() [][]models.Photo {
	pages := make([][]models.Photo, 0, s.PageCount())
	for i := 0; i < len(s.photos); i += PhotosPerPage {
		end := i + PhotosPerPage
		if end > len(s.photos) {
			end = len(s.photos)
		}
		pages = append(pages, s.photos[i:end])
	}
	return pages
}

func (s *State) clamp() {
	if max := s.PageCount() - 1; s.current > max {
		s.current = max
	}
	if s.current < 0 {
		s.current = 0
	}
}

// View is what gets rendered. Flipped is recomputed from the current page on
// every render and never stored.
type View struct {
	Pages        []PageView
	Indicator    string
	Empty        bool
	PrevDisabled bool
	NextDisabled bool
}

type PageView struct {
	Index   int
	Flipped bool
	Photos  []models.Photo
}

// Render derives the view from the current state.
func (s *State) Render() View {
	count := s.PageCount()
	v := View{
		Indicator:    fmt.Sprintf("Страница %d / %d", s.current+1, count),
		Empty:        len(s.photos) == 0,
		PrevDisabled: s.current == 0,
		NextDisabled: s.current >= count-1,
	}

	for i, photos := range s.Pages() {
		v.Pages = append(v.Pages, PageView{
			Index:   i,
			Flipped: i < s.current,
			Photos:  photos,
		})
	}

	return v
}
