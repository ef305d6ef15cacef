package config

type (
	InternalConfig struct {
		App      App
		Hospital Hospital
		JWT      JWT
	}

	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		Minio    Minio
		RabbitMQ RabbitMQ
		SMTP     SMTP
		Logger   Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		OpsAPIKeyHash             string
		DashboardPollSeconds      int
		DashboardCacheTTLSeconds  int
		MailerQueue               string
		MediaBucketName           string
		MediaCacheTTLHours        int
		UpstreamRequestsPerSecond int
		UpstreamBurst             int
	}

	Hospital struct {
		BaseUrl   string
		MediaHost string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	SMTP struct {
		Host        string
		Username    string
		Password    string
		EmailSender string
		Port        int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
