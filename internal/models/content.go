package models

import "errors"

// ErrNotFound signals that a single-record lookup did not resolve.
var ErrNotFound = errors.New("record not found")

// Project is one portfolio project card.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Year        string   `json:"year"`
	GithubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl"`
	PaperURL    string   `json:"paperUrl"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image,omitempty"`
}

// Experience is one work-history entry.
type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Dates       string `json:"dates"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// BlogPost is one listing entry; Published reflects the visibility decision.
type BlogPost struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Slug      string   `json:"slug"`
	Tags      []string `json:"tags"`
	Date      string   `json:"date"`
	Published bool     `json:"isPublished"`
}

// BlogPostDetail is a single post with its rendered body.
type BlogPostDetail struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Date    string   `json:"date"`
}

// Book is one reading-list entry.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	CoverImage  string  `json:"coverImage,omitempty"`
	Description string  `json:"description"`
	Link        string  `json:"link,omitempty"`
	Status      string  `json:"status"`
	Order       float64 `json:"order"`
}

// Quote is one quote record.
type Quote struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Source   string `json:"source"`
	Featured bool   `json:"featured"`
}

// Tweet is one embedded social post.
type Tweet struct {
	ID       string  `json:"id"`
	Content  string  `json:"content"`
	TweetURL string  `json:"tweetUrl,omitempty"`
	TweetID  string  `json:"tweetId"`
	Date     string  `json:"date"`
	Featured bool    `json:"featured"`
	Order    float64 `json:"order"`
}

// SiteSettings holds the single site-wide settings record.
type SiteSettings struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tagline     string `json:"tagline"`
	Photo       string `json:"photo,omitempty"`
	Email       string `json:"email,omitempty"`
	Github      string `json:"github,omitempty"`
	Linkedin    string `json:"linkedin,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
}

// Home aggregates every section for the landing page. Sections that failed
// to load are present with their zero value.
type Home struct {
	Settings    *SiteSettings `json:"settings"`
	Projects    []Project     `json:"projects"`
	Experiences []Experience  `json:"experiences"`
	Posts       []BlogPost    `json:"posts"`
	Books       []Book        `json:"books"`
	Quotes      []Quote       `json:"quotes"`
	Featured    *Quote        `json:"featured"`
	Tweets      []Tweet       `json:"tweets"`
}
