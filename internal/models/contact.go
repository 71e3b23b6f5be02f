package models

// ContactMessage is a contact form submission
type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=100"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// SocialLinks holds the company's social media URLs
type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	GitHub   string `json:"github"`
}

// ContactInfo is the static contact metadata served by GET /api/contact/info
type ContactInfo struct {
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Address string      `json:"address"`
	Social  SocialLinks `json:"social"`
}
