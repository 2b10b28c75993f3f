package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	PublicURL     string
	OriginURL     string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	MigrationsDir string
	DBMaxConns    int
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	JWTExpiry     time.Duration
	UploadDir     string
	MaxUploadSize int64
	CloudinaryURL string
	CloudName     string
	CloudKey      string
	CloudSecret   string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string

	ImagesPerProduct int
	PageSize         int
	MaxPageSize      int
	SearchWindow     int
	SearchLimit      int
	RefreshInterval  time.Duration
	CartTTL          time.Duration
	CacheTTL         time.Duration
	LoginPerMinute   int
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		PublicURL:     getEnv("PUBLIC_URL", "http://localhost:8082"),
		OriginURL:     getEnv("ORIGIN_URL", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "lutkowo"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migration"),
		DBMaxConns:    getInt("DB_MAX_CONNS", 25),
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		JWTExpiry:     getDuration("JWT_EXPIRY", 24*time.Hour),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize: getInt64("MAX_UPLOAD_SIZE", 5242880),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		CloudName:     getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudKey:      getEnv("CLOUDINARY_API_KEY", ""),
		CloudSecret:   getEnv("CLOUDINARY_API_SECRET", ""),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getInt("SMTP_PORT", 587),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		SMTPFrom:      getEnv("SMTP_FROM", "sklep@lutkowo.pl"),

		ImagesPerProduct: getInt("IMAGES_PER_PRODUCT", 5),
		PageSize:         getInt("PAGE_SIZE", 20),
		MaxPageSize:      getInt("MAX_PAGE_SIZE", 100),
		SearchWindow:     getInt("SEARCH_WINDOW", 50),
		SearchLimit:      getInt("SEARCH_LIMIT", 10),
		RefreshInterval:  getDuration("REFRESH_INTERVAL", 5*time.Minute),
		CartTTL:          getDuration("CART_TTL", 30*24*time.Hour),
		CacheTTL:         getDuration("CACHE_TTL", 5*time.Minute),
		LoginPerMinute:   getInt("LOGIN_PER_MINUTE", 5),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getInt64(key string, defaultValue int64) int64 {
	n, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
