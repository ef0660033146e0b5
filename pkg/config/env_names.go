package config

// Environment variable names shared between Load and the tests.
const (
	EnvAppEnv        = "BIRYANI_APP_ENV"
	EnvPort          = "BIRYANI_APP_PORT"
	EnvRedisURL      = "BIRYANI_REDIS_URL"
	EnvOrderIDSource = "BIRYANI_ORDER_ID_SOURCE"
	EnvWindowPolicy  = "BIRYANI_ORDER_WINDOW_POLICY"
	EnvWindowStart   = "BIRYANI_ORDER_WINDOW_START"
	EnvWindowEnd     = "BIRYANI_ORDER_WINDOW_END"
	EnvSheetsURL     = "BIRYANI_SHEETS_WEBAPP_URL"
	EnvWhatsAppTo    = "BIRYANI_WHATSAPP_RECIPIENT"
	EnvShippingFee   = "BIRYANI_SHIPPING_FEE"
	EnvAdminUsername = "BIRYANI_ADMIN_USERNAME"
	EnvAdminPassword = "BIRYANI_ADMIN_PASSWORD"
)
