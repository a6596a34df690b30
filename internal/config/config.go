package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const KeyIdentity = key("identity")

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	BrokerMemory = "memory"
	BrokerRedis  = "redis"
)

type Config struct {
	Service  Service  `env-prefix:"SERVICE_"`
	Platform Platform `env-prefix:"PLATFORM_"`
	Logger   Logger   `env-prefix:"LOGGER_"`
	Storage  Storage  `env-prefix:"STORAGE_"`
	Postgres Postgres `env-prefix:"POSTGRES_"`
	Broker   Broker   `env-prefix:"BROKER_"`
	Kafka    Kafka    `env-prefix:"KAFKA_"`
	Auth     Auth     `env-prefix:"AUTH_"`
	Live     Live     `env-prefix:"LIVE_"`
	Chat     Chat     `env-prefix:"CHAT_"`
}

type Service struct {
	Name         string        `env:"NAME" env-default:"chat-service"`
	Port         string        `env:"PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" env-default:"15s"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"development"`
}

type Logger struct {
	Level string `env:"LEVEL" env-default:"info"`
}

type Storage struct {
	Driver string `env:"DRIVER" env-default:"postgres"`
}

type Postgres struct {
	User     string `env:"USER" env-default:"postgres"`
	Password string `env:"PASSWORD"`
	Database string `env:"DB" env-default:"chat"`
	Host     string `env:"HOST" env-default:"localhost"`
	Port     string `env:"PORT" env-default:"5432"`
}

type Broker struct {
	Driver        string `env:"DRIVER" env-default:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	ChannelPrefix string `env:"CHANNEL_PREFIX" env-default:"chat:"`
}

type Kafka struct {
	Host      string `env:"HOST" env-default:"localhost"`
	Port      string `env:"PORT" env-default:"9092"`
	UserTopic string `env:"USER_TOPIC" env-default:"user-profile-updates"`
	GroupID   string `env:"GROUP_ID" env-default:"chat-identity-mirror"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET" env-required:"true"`
}

type Live struct {
	WorkerPoolSize int64 `env:"WORKER_POOL_SIZE" env-default:"64"`
	SendBuffer     int   `env:"SEND_BUFFER" env-default:"256"`
	MaxFrameSize   int64 `env:"MAX_FRAME_SIZE" env-default:"65536"`
}

type Chat struct {
	RoomHistoryLimit   uint64 `env:"ROOM_HISTORY_LIMIT" env-default:"200"`
	ThreadHistoryLimit uint64 `env:"THREAD_HISTORY_LIMIT" env-default:"500"`
	PollPageLimit      uint64 `env:"POLL_PAGE_LIMIT" env-default:"1000"`
	RoomSearchLimit    uint64 `env:"ROOM_SEARCH_LIMIT" env-default:"20"`
	MaxAuthorNameLen   int    `env:"MAX_AUTHOR_NAME_LEN" env-default:"50"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read env variables: %v\n", err)
		os.Exit(1)
	}

	return cfg
}

// Addr is the Kafka bootstrap address.
func (k Kafka) Addr() string {
	return fmt.Sprintf("%s:%s", k.Host, k.Port)
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		p.User, p.Password, p.Database, p.Host, p.Port)
}
