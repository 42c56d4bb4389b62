package config

import "time"

type Config struct {
	Server  Server  `yaml:"server" validate:"required"`
	Gemini  Gemini  `yaml:"gemini" validate:"required"`
	Assets  Assets  `yaml:"assets" validate:"required"`
	Screens Screens `yaml:"screens" validate:"required"`
	Storage Storage `yaml:"storage" validate:"required"`
}

type Server struct {
	Port      string `yaml:"port" default:":8080" comment:"Server Port" validate:"required"`
	Env       string `yaml:"env" default:"development" comment:"Server Environment" validate:"required"`
	PublicURL string `yaml:"public_url" default:"http://localhost:5173" comment:"Public URL of the frontend, used for share links" validate:"required,httporhttps"`
}

type Gemini struct {
	APIKey            string  `yaml:"api_key" comment:"Gemini API key, GEMINI_API_KEY overrides this"`
	FastModel         string  `yaml:"fast_model" default:"gemini-3-flash-preview" comment:"Model for enumerable content" validate:"required,nospaces"`
	ReasoningModel    string  `yaml:"reasoning_model" default:"gemini-3-pro-preview" comment:"Model for post and video insights" validate:"required,nospaces"`
	RequestsPerSecond float64 `yaml:"requests_per_second" default:"5" comment:"Provider request pacing, 0 disables" validate:"gte=0"`
	Burst             int     `yaml:"burst" default:"10" comment:"Provider request burst" validate:"gte=0"`
}

type Assets struct {
	ImageBaseURL string `yaml:"image_base_url" default:"https://picsum.photos" comment:"Placeholder image service" validate:"required,https"`
}

type Screens struct {
	TTL            time.Duration `yaml:"ttl" default:"30m" comment:"Idle time before a mounted screen is unmounted" validate:"required"`
	ChatReplyDelay time.Duration `yaml:"chat_reply_delay" default:"1500ms" comment:"Delay before the simulated chat reply" validate:"gte=0"`
}

type Storage struct {
	Backend     string `yaml:"backend" default:"redis" comment:"Theme preference backend: redis, postgres or memory" validate:"required,oneof=redis postgres memory"`
	DatabaseURL string `yaml:"database_url" comment:"Database URL, required for postgres" validate:"required_if=Backend postgres"`
	RedisURL    string `yaml:"redis_url" comment:"Redis URL, required for redis" validate:"required_if=Backend redis"`
}
