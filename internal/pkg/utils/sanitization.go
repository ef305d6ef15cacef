package utils

import (
	"medicenter-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(request *requests.LoginUser) {
	request.Username = strings.TrimSpace(request.Username)
}

func SanitizeRegisterRequest(request *requests.RegisterUser) {
	request.Username = strings.TrimSpace(request.Username)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Fullname = strings.TrimSpace(request.Fullname)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Gender = strings.TrimSpace(request.Gender)
	request.Role = strings.ToUpper(strings.TrimSpace(request.Role))
}

func SanitizeContactMessageRequest(request *requests.ContactMessage) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Subject = strings.TrimSpace(request.Subject)
	request.Message = strings.TrimSpace(request.Message)
}

func SanitizeNewsletterSignupRequest(request *requests.NewsletterSignup) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}
