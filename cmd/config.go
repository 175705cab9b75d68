package cmd

// Config carries everything the service reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// WhatsAppGatewayURL is the gateway endpoint messages are posted to.
	// Empty disables outbound notifications.
	WhatsAppGatewayURL string
	// WhatsAppTimeout bounds one gateway call, e.g. "10s".
	WhatsAppTimeout string

	// RefreshSchedule is the five-field cron expression for the working
	// set refresh.
	RefreshSchedule string

	LogLevel  string
	LogFormat string
}
