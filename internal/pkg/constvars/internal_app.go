package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDCNTR_SVC_"
)

// Roles are the upstream profile role values. The dashboard dispatch is a total
// map over these; anything else falls back to the unknown-role view.
const (
	MedicenterRolePatient = "PATIENT"
	MedicenterRoleDoctor  = "DOCTOR"
	MedicenterRoleNurse   = "NURSE"
	MedicenterRoleLab     = "LAB"
	MedicenterRoleAdmin   = "ADMIN"
)

const (
	DashboardViewPatient = "patient"
	DashboardViewDoctor  = "doctor"
	DashboardViewNurse   = "nurse"
	DashboardViewLab     = "lab"
	DashboardViewAdmin   = "admin"
	DashboardViewUnknown = "unknown_role"
)

const (
	RedirectDashboard = "/dashboard"
	RedirectHome      = "/"
)

const (
	SessionKeyPrefix       = "session:"
	DashboardCachePrefix   = "dashboard_cache:"
	NewsletterDedupePrefix = "newsletter:"
)

const (
	// Upstream resource path segments, appended to the hospital API base URL.
	ResourceAuth           = "/auth"
	ResourceDashboard      = "/dashboard"
	ResourceAppointments   = "/appointments"
	ResourceBlog           = "/blog"
	ResourceTestRequests   = "/test-requests"
	ResourceLabResults     = "/lab-results"
	ResourceVitalRequests  = "/vital-requests"
	ResourceVitals         = "/vitals"
	ResourceStaff          = "/staff"
	ResourceMedicalReports = "/medical-reports"
)

const (
	MongoCollectionContactMessages   = "contact_messages"
	MongoCollectionNewsletterSignups = "newsletter_signups"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	MediaPathPrefix        = "/media/"
	BlogMaxImages          = 3
)
