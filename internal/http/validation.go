package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"blog-server/internal/domain"
)

var (
	credentialPattern = regexp.MustCompile(`^\S{5,16}$`)
	shortTextPattern  = regexp.MustCompile(`^\S{1,10}$`)

	validate = validator.New()
)

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field  string
	Reason string
}

// ValidationErrors is returned when a request fails validation. It is
// checked before any service call is made.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Reason)
	}
	return strings.Join(parts, "; ")
}

type validation struct {
	errs ValidationErrors
}

func (v *validation) add(field, reason string) {
	v.errs = append(v.errs, ValidationError{Field: field, Reason: reason})
}

func (v *validation) match(field, value string, re *regexp.Regexp, reason string) {
	if !re.MatchString(value) {
		v.add(field, reason)
	}
}

func (v *validation) notEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "must not be empty")
	}
}

func (v *validation) tag(field, value, tag, reason string) {
	if err := validate.Var(value, tag); err != nil {
		v.add(field, reason)
	}
}

func (v *validation) positive(field string, value int64) {
	if value <= 0 {
		v.add(field, "must be a positive id")
	}
}

func (v *validation) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

func validateCredentials(username, password string) error {
	var v validation
	v.match("username", username, credentialPattern, "must be 5-16 non-blank characters")
	v.match("password", password, credentialPattern, "must be 5-16 non-blank characters")
	return v.err()
}

func validateProfile(req updateProfileRequest) error {
	var v validation
	v.match("nickname", req.Nickname, shortTextPattern, "must be 1-10 non-blank characters")
	v.tag("email", req.Email, "required,email", "must be a valid email address")
	return v.err()
}

func validateAvatarURL(avatarURL string) error {
	var v validation
	v.tag("avatarUrl", avatarURL, "required,url", "must be a valid URL")
	return v.err()
}

func validateCategory(req categoryRequest, update bool) error {
	var v validation
	if update {
		v.positive("id", req.ID)
	}
	v.notEmpty("categoryName", req.Name)
	v.notEmpty("categoryAlias", req.Alias)
	return v.err()
}

func validateArticle(req articleRequest, update bool) error {
	var v validation
	if update {
		v.positive("id", req.ID)
	}
	v.match("title", req.Title, shortTextPattern, "must be 1-10 non-blank characters")
	v.notEmpty("content", req.Content)
	v.tag("coverImg", req.CoverImg, "required,url", "must be a valid URL")
	if !domain.ArticleState(req.State).Valid() {
		v.add("state", fmt.Sprintf("must be %q or %q", domain.ArticleStatePublished, domain.ArticleStateDraft))
	}
	v.positive("categoryId", req.CategoryID)
	return v.err()
}

func validateArticleState(state string) error {
	if state == "" || domain.ArticleState(state).Valid() {
		return nil
	}
	var v validation
	v.add("state", fmt.Sprintf("must be %q or %q", domain.ArticleStatePublished, domain.ArticleStateDraft))
	return v.err()
}
