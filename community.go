package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// communityBoard is the in-memory post collection behind the community
// endpoints. Posts are not persisted across restarts; the board starts from
// the seeded sample posts, new posts are prepended, likes increment in
// place. A mutex serializes access since handlers run concurrently.
type communityBoard struct {
	mu    sync.Mutex
	posts []CommunityPost
}

func newCommunityBoard(seed []CommunityPost) *communityBoard {
	posts := make([]CommunityPost, len(seed))
	copy(posts, seed)
	return &communityBoard{posts: posts}
}

// List returns the posts newest-first.
func (b *communityBoard) List() []CommunityPost {
	b.mu.Lock()
	defer b.mu.Unlock()
	posts := make([]CommunityPost, len(b.posts))
	copy(posts, b.posts)
	return posts
}

// validPostCategories are the categories the dashboard renders.
var validPostCategories = map[string]bool{
	"question": true,
	"tip":      true,
	"success":  true,
	"alert":    true,
}

// Add validates the form, builds a post and prepends it.
func (b *communityBoard) Add(form CommunityPostForm, now time.Time) (CommunityPost, error) {
	if form.Author == "" || form.Title == "" || form.Content == "" {
		return CommunityPost{}, fmt.Errorf("author, title and content are required")
	}
	if !validPostCategories[form.Category] {
		return CommunityPost{}, fmt.Errorf("unknown category %q", form.Category)
	}

	post := CommunityPost{
		ID:        uuid.New().String(),
		Author:    form.Author,
		Title:     form.Title,
		Content:   form.Content,
		Category:  form.Category,
		Timestamp: now.UTC().Format(time.RFC3339),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.posts = append([]CommunityPost{post}, b.posts...)
	return post, nil
}

// Like increments a post's like count. The bool result reports whether the
// id was found.
func (b *communityBoard) Like(id string) (CommunityPost, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.posts {
		if b.posts[i].ID == id {
			b.posts[i].Likes++
			return b.posts[i], true
		}
	}
	return CommunityPost{}, false
}
