package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout int    `mapstructure:"CONTEXT_TIMEOUT"`

	DBHost string `mapstructure:"DB_HOST"`
	DBPort string `mapstructure:"DB_PORT"`
	DBUser string `mapstructure:"DB_USER"`
	DBPass string `mapstructure:"DB_PASS"`
	DBName string `mapstructure:"DB_NAME"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	SearchAPIURL string `mapstructure:"SEARCH_API_URL"`

	TryOnAPIURL  string `mapstructure:"TRYON_API_URL"`
	TryOnAPIKey  string `mapstructure:"TRYON_API_KEY"`
	TryOnTimeout int    `mapstructure:"TRYON_TIMEOUT"`

	FeedPageSize int `mapstructure:"FEED_PAGE_SIZE"`
	FeedMaxPages int `mapstructure:"FEED_MAX_PAGES"`

	UploadDir string `mapstructure:"UPLOAD_DIR"`
}

func NewEnv() *Env {
	env := Env{}

	viper.SetConfigFile(".env")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CONTEXT_TIMEOUT", 2)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "27017")
	viper.SetDefault("DB_NAME", "stylesong")
	viper.SetDefault("TRYON_TIMEOUT", 60)
	viper.SetDefault("FEED_PAGE_SIZE", 5)
	viper.SetDefault("FEED_MAX_PAGES", 20)
	viper.SetDefault("UPLOAD_DIR", "uploads")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("未找到.env文件，使用环境变量与默认值")
	}
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&env); err != nil {
		log.Fatalf("环境配置解析失败: %v", err)
	}

	if env.AppEnv == "development" {
		log.Println("服务运行在development模式")
	}

	return &env
}
