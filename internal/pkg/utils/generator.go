package utils

import (
	"medicenter-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}
