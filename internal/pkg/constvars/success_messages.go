package constvars

const (
	LoginSuccess             = "successfully logged in"
	LogoutSuccess            = "successfully logged out"
	RegisterSuccess          = "successfully registered"
	SessionRestoredSuccess   = "session restored"
	SessionAnonymous         = "no active session"
	GetDashboardSuccess      = "successfully retrieved dashboard"
	GetAppointmentsSuccess   = "successfully retrieved appointments"
	CreateAppointmentSuccess = "successfully created appointment"
	GetBlogPostsSuccess      = "successfully retrieved blog posts"
	GetBlogPostSuccess       = "successfully retrieved blog post"
	CreateBlogPostSuccess    = "successfully created blog post"
	UpdateBlogPostSuccess    = "successfully updated blog post"
	DeleteBlogPostSuccess    = "successfully deleted blog post"
	GetBlogStatsSuccess      = "successfully retrieved blog statistics"
	GetTestRequestsSuccess   = "successfully retrieved test requests"
	CreateTestRequestSuccess = "successfully created test request"
	CreateLabResultSuccess   = "successfully created lab result"
	GetVitalRequestsSuccess  = "successfully retrieved vital requests"
	CreateVitalsSuccess      = "successfully recorded vitals"
	CreateReportSuccess      = "successfully created medical report"
	GetStaffSuccess          = "successfully retrieved staff members"
	ContactMessageSuccess    = "thank you, we will get back to you shortly"
	NewsletterSignupSuccess  = "successfully subscribed to the newsletter"
	CacheRefreshSuccess      = "dashboard caches refreshed"
)
