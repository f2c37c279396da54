package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:5173"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisAddr   string `env:"REDIS_ADDR"`

	JWT       JWT       `envPrefix:"JWT_"`
	Checkout  Checkout  `envPrefix:"CHECKOUT_"`
	Kafka     Kafka     `envPrefix:"KAFKA_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type JWT struct {
	Secret   string `env:"SECRET"`
	TTLHours int    `env:"TTL_HOURS" envDefault:"8"`
}

// Checkout holds credentials for the hosted payment provider. SuccessURL
// must keep the {CHECKOUT_SESSION_ID} placeholder so the storefront can
// call back into /api/payments/verify with the session reference.
type Checkout struct {
	BaseAPIURL string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey  string `env:"SECRET_KEY"`
	SuccessURL string `env:"SUCCESS_URL" envDefault:"http://localhost:5173/payment/success?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL  string `env:"CANCEL_URL" envDefault:"http://localhost:5173/payment/cancel"`
}

type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"storefront.orders"`
}

type RateLimit struct {
	WindowSeconds int `env:"WINDOW_SECONDS" envDefault:"60"`
	Max           int `env:"MAX" envDefault:"60"`
}
