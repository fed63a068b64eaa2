package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Config: настройки Kafka. Переменные: SCORING_KAFKA_ENABLED, _BROKERS, _TOPIC, _GROUP_ID.
type Config struct {
	Enabled      bool          `envconfig:"ENABLED" default:"false"`
	Brokers      string        `envconfig:"BROKERS" default:"localhost:9092"` // через запятую
	Topic        string        `envconfig:"TOPIC" default:"scoring-calls"`
	GroupID      string        `envconfig:"GROUP_ID" default:"scoring-analytics"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"5s"`
}

func (c *Config) brokers() []string {
	if c == nil || c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	parts := strings.Split(c.Brokers, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Client хранит конфиг и собирает продюсера и консьюмера. Соединение с брокером открывается лениво.
type Client struct {
	cfg *Config
}

// New создаёт клиент по конфигу.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

// Producer создаёт продюсера топика вызовов. После использования вызови Close().
func (c *Client) Producer() *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.cfg.brokers()...),
		Topic:                  c.cfg.Topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           c.cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
	return &Producer{w: w}
}

// reader создаёт kafka.Reader в consumer group.
func (c *Client) reader() *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.cfg.brokers(),
		Topic:   c.cfg.Topic,
		GroupID: c.cfg.GroupID,
	})
}
