package api

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"wikoo-core/internal/domain/entity"
)

// Pointers tell a missing field apart from an empty one: a missing message is
// rejected, an empty message is a valid request.
type chatRequestBody struct {
	Message *string `json:"message" validate:"required"`
	Lang    *string `json:"lang"`
}

type reportRequestBody struct {
	ChatContext *string `json:"chat_context" validate:"required"`
	Date        *string `json:"date"`
	Lang        *string `json:"lang"`
}

type reminderRequestBody struct {
	To      string `json:"to" validate:"omitempty,email"`
	Subject string `json:"subject" validate:"max=200"`
	Body    string `json:"body" validate:"max=5000"`
}

func (b chatRequestBody) toEntity(clientID string) entity.ChatRequest {
	return entity.ChatRequest{
		Message:  *b.Message,
		Lang:     langOrDefault(b.Lang),
		ClientID: clientID,
	}
}

func (b reportRequestBody) toEntity(clientID string) entity.ReportRequest {
	req := entity.ReportRequest{
		ChatContext: *b.ChatContext,
		Lang:        langOrDefault(b.Lang),
		ClientID:    clientID,
	}
	if b.Date != nil {
		req.Date = *b.Date
	}
	return req
}

func (b reminderRequestBody) toEntity() entity.ReminderRequest {
	return entity.ReminderRequest{To: b.To, Subject: b.Subject, Body: b.Body}
}

func langOrDefault(lang *string) string {
	if lang == nil || *lang == "" {
		return entity.DefaultLanguage
	}
	return *lang
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationDetails renders validator errors as "field is required; ...".
func validationDetails(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
