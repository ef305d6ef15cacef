package responses

import "medicenter-service/internal/pkg/hospitaldto"

// Dashboard is the role-dispatched view payload. View names one of the five
// role views or the unknown-role fallback; exactly one of the view sections is
// populated.
type Dashboard struct {
	View string            `json:"view"`
	User *hospitaldto.User `json:"user"`

	Patient *PatientView `json:"patient,omitempty"`
	Doctor  *DoctorView  `json:"doctor,omitempty"`
	Nurse   *NurseView   `json:"nurse,omitempty"`
	Lab     *LabView     `json:"lab,omitempty"`
	Admin   *AdminView   `json:"admin,omitempty"`

	// UnknownRole echoes the unrecognized role value for the fallback view.
	UnknownRole string `json:"unknown_role,omitempty"`
}

type PatientView struct {
	Appointments []hospitaldto.Appointment `json:"appointments"`
}

type DoctorView struct {
	Appointments []hospitaldto.Appointment `json:"appointments"`
}

type NurseView struct {
	VitalRequests []hospitaldto.VitalRequest `json:"vital_requests"`
}

type LabView struct {
	TestRequests []hospitaldto.TestRequest `json:"test_requests"`
}

type AdminView struct {
	Staff        []hospitaldto.StaffMember `json:"staff"`
	Appointments []hospitaldto.Appointment `json:"appointments"`
	BlogStats    *hospitaldto.BlogStats    `json:"blog_stats"`
	BlogPosts    []hospitaldto.BlogPost    `json:"blog_posts"`
}

type BlogPostDetail struct {
	Post hospitaldto.BlogPost `json:"post"`
	TOC  []TOCEntry           `json:"toc"`
}

type TOCEntry struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Slug  string `json:"slug"`
}
