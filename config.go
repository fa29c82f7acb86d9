package herokuauth

// Config holds Heroku OAuth configuration.
type Config struct {
	ClientID     string `env:"HEROKU_OAUTH_CLIENT_ID,required"`
	ClientSecret string `env:"HEROKU_OAUTH_CLIENT_SECRET,required"`
	DefaultScope string `env:"HEROKU_OAUTH_DEFAULT_SCOPE" envDefault:"identity"`
	RedirectURL  string `env:"HEROKU_OAUTH_REDIRECT_URL" envDefault:""`
}
