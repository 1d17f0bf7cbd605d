package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *viper.Viper
	once   sync.Once
)

// Init 初始化配置
func Init(configFiles ...string) error {
	var err error
	once.Do(func() {
		config = viper.New()
		configFile := "config.yaml"
		if len(configFiles) > 0 {
			configFile = configFiles[0]
		}
		config.SetConfigFile(configFile)

		// 设置默认值
		setDefaults()

		// 读取配置文件
		if err = config.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config file failed: %v", err)
			return
		}

		// 监听配置文件变化
		config.WatchConfig()
	})
	return err
}

// setDefaults 设置默认值
func setDefaults() {
	config.SetDefault("server.port", 8080)
	config.SetDefault("server.mode", "debug")

	config.SetDefault("jwt.secret", "your-jwt-secret-key")
	config.SetDefault("jwt.expire", 86400)

	config.SetDefault("database.type", "postgres")
	config.SetDefault("database.host", "localhost")
	config.SetDefault("database.port", 5432)
	config.SetDefault("database.user", "postgres")
	config.SetDefault("database.password", "postgres")
	config.SetDefault("database.dbname", "deck_tools")
	config.SetDefault("database.max_idle_conns", 10)
	config.SetDefault("database.max_open_conns", 100)
	config.SetDefault("database.conn_max_lifetime", 3600)

	config.SetDefault("cache.redis.host", "localhost")
	config.SetDefault("cache.redis.port", 6379)
	config.SetDefault("cache.redis.db", 0)
	config.SetDefault("cache.redis.pool_size", 10)

	config.SetDefault("log.filename", "logs/app.log")
	config.SetDefault("log.max_size", 100)
	config.SetDefault("log.max_backups", 3)
	config.SetDefault("log.max_age", 28)
	config.SetDefault("log.compress", true)

	config.SetDefault("security.allowed_origins", "*")

	config.SetDefault("rate_limit.enabled", true)
	config.SetDefault("rate_limit.max_requests", 100)
	config.SetDefault("rate_limit.duration", 3600)

	// 导出相关
	config.SetDefault("export.converter_url", "http://localhost:9090/api/export/pdf-to-pptx")
	config.SetDefault("export.converter_timeout", 120)
	config.SetDefault("export.notify_enabled", false)
	config.SetDefault("export.notify_smtp_host", "")
	config.SetDefault("export.notify_smtp_port", 587)

	// 缩略图相关
	config.SetDefault("thumbnail.width", 480)
	config.SetDefault("thumbnail.quality", 80)
	config.SetDefault("thumbnail.settle_delay_ms", 200)
	config.SetDefault("thumbnail.debounce_ms", 800)
	config.SetDefault("thumbnail.cache_ttl", 3600)
	config.SetDefault("thumbnail.font_path", "")

	// AI生成服务
	config.SetDefault("generation.base_url", "http://localhost:9091/v1")
	config.SetDefault("generation.timeout", 60)
	config.SetDefault("generation.slide_count", 10)
}

// Get 获取配置值
func Get(key string) interface{} {
	return config.Get(key)
}

// GetString 获取字符串配置值
func GetString(key string) string {
	return config.GetString(key)
}

// GetInt 获取整数配置值
func GetInt(key string) int {
	return config.GetInt(key)
}

// GetInt64 获取64位整数配置值
func GetInt64(key string) int64 {
	return config.GetInt64(key)
}

// GetUint64 获取64位无符号整数配置值
func GetUint64(key string) uint64 {
	return config.GetUint64(key)
}

// GetFloat64 获取浮点数配置值
func GetFloat64(key string) float64 {
	return config.GetFloat64(key)
}

// GetBool 获取布尔配置值
func GetBool(key string) bool {
	return config.GetBool(key)
}

// GetStringSlice 获取字符串切片配置值
func GetStringSlice(key string) []string {
	return config.GetStringSlice(key)
}

// Set 设置配置值
func Set(key string, value interface{}) {
	config.Set(key, value)
}

// IsSet 检查配置值是否已设置
func IsSet(key string) bool {
	return config.IsSet(key)
}

// GetDSN 获取数据库连接字符串
func GetDSN() string {
	dbType := GetString("database.type")
	switch strings.ToLower(dbType) {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			GetString("database.host"),
			GetInt("database.port"),
			GetString("database.user"),
			GetString("database.password"),
			GetString("database.dbname"),
		)
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			GetString("database.user"),
			GetString("database.password"),
			GetString("database.host"),
			GetInt("database.port"),
			GetString("database.dbname"),
		)
	case "sqlite":
		return GetString("database.dbname")
	default:
		return ""
	}
}

// GetJWTSecret 获取JWT密钥
func GetJWTSecret() []byte {
	return []byte(GetString("jwt.secret"))
}

// GetServerAddress 获取服务器地址
func GetServerAddress() string {
	return fmt.Sprintf(":%d", GetInt("server.port"))
}
