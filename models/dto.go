package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	FullName string   `json:"full_name"`
	JobTitle string   `json:"job_title"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreatePostRequest struct {
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt"`
	CoverImage      string     `json:"cover_image"`
	Status          PostStatus `json:"status"`
	Featured        bool       `json:"featured"`
	Tags            []string   `json:"tags"`
	Slug            string     `json:"slug"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	FocusKeyword    string     `json:"focus_keyword"`
	OGImage         string     `json:"og_image"`
}

// UpdatePostRequest uses pointers so callers can change any subset of
// fields; nil means "leave as stored".
type UpdatePostRequest struct {
	Title           *string     `json:"title"`
	Content         *string     `json:"content"`
	Excerpt         *string     `json:"excerpt"`
	CoverImage      *string     `json:"cover_image"`
	Status          *PostStatus `json:"status"`
	Featured        *bool       `json:"featured"`
	Tags            *[]string   `json:"tags"`
	Slug            *string     `json:"slug"`
	MetaTitle       *string     `json:"meta_title"`
	MetaDescription *string     `json:"meta_description"`
	FocusKeyword    *string     `json:"focus_keyword"`
	OGImage         *string     `json:"og_image"`
}

type PostListParams struct {
	Status    string `form:"status"`
	AuthorID  uint   `form:"author_id"`
	TagSlug   string `form:"tag"`
	Featured  *bool  `form:"featured"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}

type TestimonialRequest struct {
	ClientName  string `json:"client_name" binding:"required,min=1,max=100"`
	ClientTitle string `json:"client_title"`
	Quote       string `json:"quote" binding:"required"`
	Rating      int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Approved    bool   `json:"approved"`
	SortOrder   int    `json:"sort_order"`
}

type ContactRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Subject      string `json:"subject"`
	Message      string `json:"message" binding:"required"`
	CaptchaToken string `json:"captcha_token"`
}

type AppointmentRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Service       string `json:"service"`
	Message       string `json:"message"`
	PreferredDate string `json:"preferred_date"`
	CaptchaToken  string `json:"captcha_token"`
}

type SubscribeRequest struct {
	Email        string `json:"email" binding:"required,email"`
	CaptchaToken string `json:"captcha_token"`
}
