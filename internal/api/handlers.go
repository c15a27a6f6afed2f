package api

import (
	"html/template"
	"time"

	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	templates    map[string]*template.Template
	loginLimiter *attemptLimiter

	handlerDependencies
}

type credentialsInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type registrationInput struct {
	Username    string `json:"username" form:"username"`
	DisplayName string `json:"display_name" form:"display_name"`
	Password    string `json:"password" form:"password"`
}

type linkPartnerInput struct {
	PartnerUsername string `json:"partner_username" form:"partner_username"`
}

type todoInput struct {
	Text string `json:"text" form:"text"`
}

type moodInput struct {
	Score string `json:"score" form:"score"`
	Note  string `json:"note" form:"note"`
}

type noteInput struct {
	Message string `json:"message" form:"message"`
}

// FlashPayload survives exactly one redirect inside a short-lived cookie.
// The sticky fields re-fill auth forms after a failed submit; passwords are
// never carried.
type FlashPayload struct {
	AuthError           string `json:"auth_error,omitempty"`
	AuthSuccess         string `json:"auth_success,omitempty"`
	PartnerError        string `json:"partner_error,omitempty"`
	PartnerSuccess      string `json:"partner_success,omitempty"`
	MoodError           string `json:"mood_error,omitempty"`
	MoodSuccess         string `json:"mood_success,omitempty"`
	NoteSuccess         string `json:"note_success,omitempty"`
	LoginUsername       string `json:"login_username,omitempty"`
	RegisterUsername    string `json:"register_username,omitempty"`
	RegisterDisplayName string `json:"register_display_name,omitempty"`
}

const authTokenTTL = 7 * 24 * time.Hour

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := newTemplateFuncMap()
	pages := []string{
		"login",
		"register",
		"dashboard",
		"link_partner",
		"notes",
	}
	templates, err := parsePageTemplates(templateDir, funcMap, pages)
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		templates:    templates,
		loginLimiter: newAttemptLimiter(),
	}
	handler.ensureDependencies()
	return handler, nil
}
