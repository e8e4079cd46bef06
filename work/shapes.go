package work

import "time"

// The shapes below describe rows of sibling datasets. They carry no behavior.

type Movie struct {
	NumVotes       int       `json:"num_votes"`
	RuntimeMinutes int       `json:"runtime_minutes"`
	Genres         []string  `json:"genres"`
	Year           time.Time `json:"year"`
	AverageRating  float64   `json:"average_rating"`
	TConst         string    `json:"tconst"`
	TitleType      string    `json:"title_type"`
	PrimaryTitle   string    `json:"primary_title"`
	OriginalTitle  string    `json:"original_title"`
}

type Work struct {
	ID           string    `json:"id"`
	PubYear      int       `json:"pub_year"`
	PubDate      time.Time `json:"pub_date"`
	IsPublished  string    `json:"is_published"`
	Type         string    `json:"type"`
	TypeCrossref string    `json:"type_crossref"`
	CitedByCount int       `json:"cited_by_count"`
}

// Author links an author to a work. Counties keeps the dataset's column name.
type Author struct {
	WorkID   string   `json:"work_id"`
	AuthorID string   `json:"a_id"`
	Position string   `json:"position"`
	Counties []string `json:"counties"`
}

type Keyword struct {
	WorkID       string  `json:"work_id"`
	KeywordID    string  `json:"keyword_id"`
	KeywordScore float64 `json:"keyword_score"`
	KeywordName  string  `json:"keyword_name"`
}

type ReferencedWork struct {
	WorkID           string `json:"work_id"`
	ReferencedWorkID string `json:"referenced_work_id"`
}

type Topic struct {
	WorkID                   string  `json:"work_id"`
	TopicID                  string  `json:"topic_id"`
	TopicDisplayName         string  `json:"topic_display_name"`
	TopicScore               float64 `json:"topic_score"`
	TopicSubFieldDisplayName string  `json:"topic_sub_field_display_name"`
	TopicFieldDisplayName    string  `json:"topic_field_display_name"`
	TopicDomainDisplayName   string  `json:"topic_domain_display_name"`
}
