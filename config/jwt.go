package config

// JWTConfig 签发与校验访问令牌的配置
type JWTConfig struct {
	Secret string `mapstructure:"secret" json:"secret" yaml:"secret"` // HMAC 签名密钥
	Issuer string `mapstructure:"issuer" json:"issuer" yaml:"issuer"` // 签发方标识
	// ExpireHours 令牌有效期（小时），无效值回落为 24
	ExpireHours int `mapstructure:"expireHours" json:"expireHours" yaml:"expireHours"`
}
