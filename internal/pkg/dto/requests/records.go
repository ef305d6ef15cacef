package requests

import "mime/multipart"

type CreateAppointment struct {
	DoctorID   int64  `json:"doctor" validate:"required"`
	Department string `json:"department" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}

type CreateTestRequest struct {
	PatientID int64  `json:"patient" validate:"required"`
	TestType  string `json:"test_type" validate:"required"`
	Notes     string `json:"notes"`
}

type CreateLabResult struct {
	TestRequestID int64  `validate:"required"`
	Result        string `validate:"required"`
	Remarks       string

	Attachment       multipart.File        `validate:"-"`
	AttachmentHeader *multipart.FileHeader `validate:"-"`
}

type CreateVitalRequest struct {
	PatientID int64 `json:"patient" validate:"required"`
}

type CreateVitals struct {
	VitalRequestID  int64  `json:"vital_request" validate:"required"`
	Temperature     string `json:"temperature" validate:"required"`
	BloodPressure   string `json:"blood_pressure" validate:"required"`
	PulseRate       string `json:"pulse_rate" validate:"required"`
	RespiratoryRate string `json:"respiratory_rate" validate:"required"`
	Weight          string `json:"weight"`
	Height          string `json:"height"`
}

type CreateMedicalReport struct {
	AppointmentID int64  `json:"appointment" validate:"required"`
	Diagnosis     string `json:"diagnosis" validate:"required"`
	Prescription  string `json:"prescription" validate:"required"`
	Notes         string `json:"notes"`
}

// CreateBlogPost carries up to three images as multipart file parts.
type CreateBlogPost struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`

	Images       []multipart.File        `validate:"-"`
	ImageHeaders []*multipart.FileHeader `validate:"-"`
}

type UpdateBlogPost struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`

	Images       []multipart.File        `validate:"-"`
	ImageHeaders []*multipart.FileHeader `validate:"-"`
}

type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type NewsletterSignup struct {
	Email string `json:"email" validate:"required,email"`
}

type QueryParams struct {
	Page     int
	PageSize int
	Status   string
	Count    int
}
