package cfg

type Cfg struct {
	// Application configuration
	Port         string
	BaseUrl      string
	APIAccessKey string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
