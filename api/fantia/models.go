package fantia

// FantiaContent is one content segment of a post.
type FantiaContent struct {
	Category string `json:"category"`

	// Text blocks that are embedded in the post content blocks.
	Comment string `json:"comment"`

	// Plan is the subscription plan that gates this
	// segment. nil for segments visible to everyone.
	Plan *FantiaPlan `json:"plan"`
}

type FantiaPlan struct {
	ID    int `json:"id"`
	Price int `json:"price"`
}

type FantiaFanclub struct {
	ID                         int    `json:"id"`
	FanclubNameWithCreatorName string `json:"fanclub_name_with_creator_name"`
}

type FantiaPostDetails struct {
	ID    int    `json:"id"`
	Title string `json:"title"`

	// The main post content for non-blog posts
	Comment string `json:"comment"`

	// The main post content for blog-style posts
	BlogComment string `json:"blog_comment"`

	Fanclub      FantiaFanclub   `json:"fanclub"`
	PostContents []FantiaContent `json:"post_contents"`
}

type FantiaPost struct {
	Post *FantiaPostDetails `json:"post"`
}
