package models

import "time"

// Post is an album recommendation. The auto-increment id doubles as the
// recency ordering key: rows are inserted in id order, so feeds sort by
// id DESC and use CreatedAt only as the pagination cursor.
//
// SpotifyURL and WikiDesc are filled by the enrichment pipeline before
// insert. Both are always present on a stored post, degraded to nil /
// the fallback sentinel when the upstream lookups fail.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"author"`
	AlbumTitle  string    `gorm:"size:255;not null" json:"albumTitle"`
	AlbumArtist string    `gorm:"size:255;not null" json:"albumArtist"`
	Theme       string    `gorm:"size:255;not null" json:"theme"`
	YT          string    `gorm:"size:512;not null" json:"yt"`
	AlbumArt    string    `gorm:"size:512;not null" json:"albumArt"`
	SpotifyURL  *string   `gorm:"size:512" json:"spotify"`
	WikiDesc    string    `gorm:"type:text" json:"wikiDesc"`
	CreatedAt   time.Time `json:"createdAt"`
	User        User      `json:"creator"`
}
