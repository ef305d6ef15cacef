package hospitaldto

// Server-owned records. The portal only constructs creation payloads and
// forwards returned representations; identity and versioning live upstream.

type Appointment struct {
	ID            int64  `json:"id"`
	PatientName   string `json:"patient_name"`
	DoctorName    string `json:"doctor_name"`
	Department    string `json:"department"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	PatientID     int64  `json:"patient,omitempty"`
	DoctorID      int64  `json:"doctor,omitempty"`
	MedicalRecord string `json:"medical_record,omitempty"`
}

type TestRequest struct {
	ID          int64  `json:"id"`
	PatientName string `json:"patient_name"`
	TestType    string `json:"test_type"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
	RequestedBy string `json:"requested_by"`
	CreatedAt   string `json:"created_at"`
}

type LabResult struct {
	ID            int64  `json:"id"`
	TestRequestID int64  `json:"test_request"`
	Result        string `json:"result"`
	Remarks       string `json:"remarks"`
	Attachment    string `json:"attachment,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type VitalRequest struct {
	ID          int64  `json:"id"`
	PatientName string `json:"patient_name"`
	RequestedBy string `json:"requested_by"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type Vitals struct {
	ID              int64  `json:"id"`
	VitalRequestID  int64  `json:"vital_request"`
	Temperature     string `json:"temperature"`
	BloodPressure   string `json:"blood_pressure"`
	PulseRate       string `json:"pulse_rate"`
	RespiratoryRate string `json:"respiratory_rate"`
	Weight          string `json:"weight"`
	Height          string `json:"height"`
	CreatedAt       string `json:"created_at"`
}

type MedicalReport struct {
	ID            int64  `json:"id"`
	AppointmentID int64  `json:"appointment"`
	Diagnosis     string `json:"diagnosis"`
	Prescription  string `json:"prescription"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"created_at"`
}

type BlogPost struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Author    string `json:"author"`
	Image1    string `json:"image1,omitempty"`
	Image2    string `json:"image2,omitempty"`
	Image3    string `json:"image3,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type BlogStats struct {
	TotalPosts   int `json:"total_posts"`
	TotalAuthors int `json:"total_authors"`
	PostsThisMo  int `json:"posts_this_month"`
}

type StaffMember struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Profile  *Profile `json:"profile,omitempty"`
}

// UpstreamError is the error body shape the hospital API returns on non-2xx.
// Either field may be present; Message wins when both are.
type UpstreamError struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (e *UpstreamError) ClientMessage() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Detail
}
