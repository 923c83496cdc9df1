package config

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 无密码时留空
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 逻辑库编号
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 使用客户端默认值
}

// HotCacheConfig 热门文章缓存相关配置
type HotCacheConfig struct {
	// TopN 热榜缓存的文章数量，无效值回落为 50
	TopN int `mapstructure:"topN" json:"topN" yaml:"topN"`
	// TTLSeconds 热榜 JSON 缓存的过期秒数，无效值回落为 300
	TTLSeconds int `mapstructure:"ttlSeconds" json:"ttlSeconds" yaml:"ttlSeconds"`
}
