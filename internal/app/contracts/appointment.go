package contracts

import (
	"context"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/hospitaldto"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context, session *models.Session, queryParams *requests.QueryParams) ([]hospitaldto.Appointment, error)
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) ([]hospitaldto.Appointment, error)
}

type AppointmentHospitalClient interface {
	FindAll(ctx context.Context, accessToken string, queryParams *requests.QueryParams) ([]hospitaldto.Appointment, error)
	CreateAppointment(ctx context.Context, accessToken string, request *requests.CreateAppointment) (*hospitaldto.Appointment, error)
}
