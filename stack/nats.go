package stack

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/KR-EduLab/Intranet_BLessonPlan/settings"
	"github.com/nats-io/nats.go"
)

var settingsData = settings.GetSettings()

// NatsNestJSRes is the envelope the NestJS gateway wraps replies in.
type NatsNestJSRes struct {
	Response interface{} `json:"response"`
	IsError  bool        `json:"isError"`
}

type DefaultNatsResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// Nats connects on first use, not at construction, so importing packages
// stays side effect free.
type Nats struct {
	once sync.Once
	conn *nats.Conn
}

func (n *Nats) connection() *nats.Conn {
	n.once.Do(func() {
		conn, err := nats.Connect(fmt.Sprintf("nats://%s", settingsData.NATS_HOST))
		if err != nil {
			panic(err)
		}
		n.conn = conn
	})
	return n.conn
}

func (n *Nats) Publish(subject string, data []byte) {
	n.connection().Publish(subject, data)
}

func (n *Nats) PublishEncode(subject string, data interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	n.connection().Publish(subject, encoded)
	return nil
}

func (n *Nats) Subscribe(subject string, handler func(m *nats.Msg)) (*nats.Subscription, error) {
	return n.connection().Subscribe(subject, handler)
}

func (n *Nats) Request(subject string, data []byte) (*nats.Msg, error) {
	return n.connection().Request(subject, data, 10*time.Second)
}

// DecodeDataNest unwraps the `data` field of a NestJS message payload.
func (n *Nats) DecodeDataNest(data []byte) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	dataNest, ok := payload["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("message has no data payload")
	}
	return dataNest, nil
}

func (n *Nats) ExtractPayload(data interface{}, dest interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, dest)
}

func NewNats() *Nats {
	return &Nats{}
}
